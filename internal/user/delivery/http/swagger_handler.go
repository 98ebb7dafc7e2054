package http

// SignIn godoc
// @Summary Sign in
// @Description Authenticate with email and password and get a JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Credentials"
// @Success 200 {object} object{success=bool,message=string,data=object{token=string,user=object}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 429 {object} object{success=bool,error=string}
// @Router /api/auth/sign-in [post]
func (h *UserHandler) SignInDoc() {}

// GetProfile godoc
// @Summary Get current user profile
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/users/me [get]
func (h *UserHandler) GetProfileDoc() {}

// UpdateProfile godoc
// @Summary Update current user profile
// @Description Normal admins may only change phoneNumber and nidNumber
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{phoneNumber=string,nidNumber=string} true "Profile fields"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/users/me [put]
func (h *UserHandler) UpdateProfileDoc() {}

// ChangePassword godoc
// @Summary Change own password
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{oldPassword=string,newPassword=string} true "Passwords"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/users/me/password [put]
func (h *UserHandler) ChangePasswordDoc() {}

// ListUsers godoc
// @Summary List users
// @Description Normal admins only see active users and no permissions of others
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=[]object}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/users [get]
func (h *UserHandler) ListUsersDoc() {}

// GetUser godoc
// @Summary Get user by ID
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} object{success=bool,data=object}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/users/{id} [get]
func (h *UserHandler) GetUserDoc() {}

// CreateUser godoc
// @Summary Create user (super admin)
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{employeeId=string,username=string,email=string,password=string,phoneNumber=string,nidNumber=string,jobStartDate=string,jobEndDate=string,isActive=bool,role=string,permissions=object} true "User data"
// @Success 201 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /api/users [post]
func (h *UserHandler) CreateUserDoc() {}

// UpdateUser godoc
// @Summary Update user
// @Description Super admins may change every field; others only their own phone and NID numbers
// @Tags Users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body object true "Fields to change"
// @Success 200 {object} object{success=bool,message=string,data=object}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/users/{id} [put]
func (h *UserHandler) UpdateUserDoc() {}

// DeleteUser godoc
// @Summary Delete user (super admin)
// @Tags Users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} object{success=bool,message=string}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 404 {object} object{success=bool,error=string}
// @Router /api/users/{id} [delete]
func (h *UserHandler) DeleteUserDoc() {}
