package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/expense-tracker/backend/internal/auth"
	"github.com/expense-tracker/backend/internal/httputil"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

const (
	sessionCookie = "session"

	contextUser  = "expense-tracker-user"
	contextToken = "expense-tracker-token"
)

// RegisterAuthRoutes registers the routes for sign-up, sign-in and sign-out.
func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/signup", co.OptionsSignUp)
	r.POST("/signup", co.SignUp)

	r.OPTIONS("/login", co.OptionsLogin)
	r.POST("/login", co.Login)

	r.OPTIONS("/logout", co.OptionsLogout)
	r.POST("/logout", co.Authenticate, co.Logout)

	r.OPTIONS("/me", co.OptionsMe)
	r.GET("/me", co.Authenticate, co.GetMe)
}

// sessionToken returns the token from the Authorization header or,
// if there is none, from the session cookie.
func sessionToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") {
			return ""
		}
		return strings.TrimSpace(token)
	}

	token, err := c.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	return token
}

// Authenticate resolves the session of the request and aborts with
// 401 if there is no valid one.
func (co Controller) Authenticate(c *gin.Context) {
	token := sessionToken(c)
	if token == "" {
		abort(c, auth.ErrInvalidSession)
		return
	}

	user, err := co.Auth.Current(c.Request.Context(), token)
	if err != nil {
		abort(c, err)
		return
	}

	c.Set(contextUser, user)
	c.Set(contextToken, token)
	c.Next()
}

func currentUser(c *gin.Context) models.User {
	return c.MustGet(contextUser).(models.User)
}

func setSessionCookie(c *gin.Context, s models.Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, s.Token, int(time.Until(s.ExpiresAt).Seconds()), "/", "", c.Request.TLS != nil, true)
}

// OptionsSignUp returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Auth
//	@Success		204
//	@Router			/v1/auth/signup [options]
func (co Controller) OptionsSignUp(c *gin.Context) {
	httputil.OptionsPost(c)
}

// SignUp creates an account and signs the new user in
//
//	@Summary		Sign up
//	@Description	Creates an account and starts a session for it
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			account	body		SignUpRequest	true	"Account"
//	@Success		201		{object}	SessionResponse
//	@Failure		400		{object}	HTTPError
//	@Failure		409		{object}	HTTPError
//	@Failure		500		{object}	HTTPError
//	@Router			/v1/auth/signup [post]
func (co Controller) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := httputil.BindData(c, &req); err != nil {
		abort(c, err)
		return
	}

	if _, err := co.Auth.SignUp(c.Request.Context(), req.Email, req.Password, req.Name); err != nil {
		abort(c, err)
		return
	}

	session, user, err := co.Auth.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		abort(c, err)
		return
	}

	setSessionCookie(c, session)
	c.JSON(http.StatusCreated, SessionResponse{Data: Session{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      user,
	}})
}

// OptionsLogin returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Auth
//	@Success		204
//	@Router			/v1/auth/login [options]
func (co Controller) OptionsLogin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// Login starts a session
//
//	@Summary		Sign in
//	@Description	Checks the credentials and starts a session. The token is returned and set as cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		Credentials	true	"Credentials"
//	@Success		200			{object}	SessionResponse
//	@Failure		400			{object}	HTTPError
//	@Failure		401			{object}	HTTPError
//	@Failure		500			{object}	HTTPError
//	@Router			/v1/auth/login [post]
func (co Controller) Login(c *gin.Context) {
	var creds Credentials
	if err := httputil.BindData(c, &creds); err != nil {
		abort(c, err)
		return
	}

	session, user, err := co.Auth.SignIn(c.Request.Context(), creds.Email, creds.Password)
	if err != nil {
		abort(c, err)
		return
	}

	setSessionCookie(c, session)
	c.JSON(http.StatusOK, SessionResponse{Data: Session{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      user,
	}})
}

// OptionsLogout returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Auth
//	@Success		204
//	@Router			/v1/auth/logout [options]
func (co Controller) OptionsLogout(c *gin.Context) {
	httputil.OptionsPost(c)
}

// Logout ends the session
//
//	@Summary		Sign out
//	@Description	Ends the current session
//	@Tags			Auth
//	@Success		204
//	@Failure		401	{object}	HTTPError
//	@Failure		500	{object}	HTTPError
//	@Router			/v1/auth/logout [post]
func (co Controller) Logout(c *gin.Context) {
	if err := co.Auth.SignOut(c.Request.Context(), c.GetString(contextToken)); err != nil {
		abort(c, err)
		return
	}

	c.SetCookie(sessionCookie, "", -1, "/", "", c.Request.TLS != nil, true)
	c.Status(http.StatusNoContent)
}

// OptionsMe returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			Auth
//	@Success		204
//	@Router			/v1/auth/me [options]
func (co Controller) OptionsMe(c *gin.Context) {
	httputil.OptionsGet(c)
}

// GetMe returns the signed-in user
//
//	@Summary		Current user
//	@Description	Returns the user of the current session
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	UserResponse
//	@Failure		401	{object}	HTTPError
//	@Router			/v1/auth/me [get]
func (co Controller) GetMe(c *gin.Context) {
	c.JSON(http.StatusOK, UserResponse{Data: currentUser(c)})
}
