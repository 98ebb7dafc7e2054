package transport

import (
	"fmt"

	"github.com/tair/inventory-tracker/internal/notify/domain"
	"github.com/tair/inventory-tracker/kafka"
	"github.com/tair/inventory-tracker/pkg/config"
)

// NewNotifier builds the notifier selected by NOTIFY_TRANSPORT. The returned
// cleanup closes any producer it opened.
func NewNotifier(cfg *config.Config) (domain.Notifier, func(), error) {
	switch cfg.Notify.Transport {
	case config.TransportSMTP:
		n, err := NewEmailNotifier(cfg.SMTP)
		if err != nil {
			return nil, nil, err
		}
		return n, func() {}, nil
	case config.TransportKafka:
		publisher, err := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.AlertTopic)
		if err != nil {
			return nil, nil, err
		}
		return NewKafkaNotifier(publisher), func() { _ = publisher.Close() }, nil
	case config.TransportLog:
		return LogNotifier{}, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown notify transport %q", cfg.Notify.Transport)
	}
}
