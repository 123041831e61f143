package gateway

import (
	"context"
	"net/http"

	"lmsadmin/internal/dto"
	"lmsadmin/internal/model"
)

// sessionUser is the login response user: the profile plus the issued token.
type sessionUser struct {
	model.UserProfile
	Token string `json:"token"`
}

type loginResponse struct {
	User sessionUser `json:"user"`
}

// Login exchanges credentials for a session. Wrong credentials come back as
// ErrInvalidCredentials, never as a plain unauthorized.
func (c *Client) Login(ctx context.Context, creds dto.Credentials) (*model.UserSession, error) {
	var out loginResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(creds).
		SetResult(&out).
		Post("/user/login")
	if err != nil {
		return nil, c.transportError("login", err)
	}
	if resp.IsError() {
		if resp.StatusCode() == http.StatusUnauthorized {
			apiErr := c.apiError(resp).(*APIError)
			apiErr.Kind = ErrInvalidCredentials
			return nil, apiErr
		}
		return nil, c.apiError(resp)
	}
	return &model.UserSession{
		User:  out.User.UserProfile,
		Token: out.User.Token,
	}, nil
}

// Register creates a new account. Role falls back to student, matching the
// signup form's behavior.
func (c *Client) Register(ctx context.Context, in dto.RegisterInput) error {
	if in.Role == "" {
		in.Role = model.RoleStudent
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(in).
		Post("/user/register")
	if err != nil {
		return c.transportError("register", err)
	}
	if resp.IsError() {
		return c.apiError(resp)
	}
	return nil
}

// Logout invalidates the session on the remote.
func (c *Client) Logout(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/user/logout")
	if err != nil {
		return c.transportError("logout", err)
	}
	if resp.IsError() {
		return c.apiError(resp)
	}
	return nil
}

// GetProfile fetches the authenticated user's profile.
func (c *Client) GetProfile(ctx context.Context) (*model.UserProfile, error) {
	var out model.UserProfile
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get("/user/profile")
	if err != nil {
		return nil, c.transportError("get profile", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	return &out, nil
}

// UpdateProfile updates name, email and optionally the profile photo. A new
// photo file makes the request multipart; otherwise the stored photo URL is
// preserved in a JSON body.
func (c *Client) UpdateProfile(ctx context.Context, in dto.ProfileInput) (*model.UserProfile, error) {
	var out model.UserProfile
	req := c.http.R().SetContext(ctx).SetResult(&out)
	if in.Photo != nil {
		req = req.
			SetMultipartFormData(map[string]string{
				"name":  in.Name,
				"email": in.Email,
			}).
			SetMultipartField("profilePhoto", in.Photo.Name, in.Photo.ContentType, in.Photo.Open())
	} else {
		req = req.SetBody(in)
	}
	resp, err := req.Patch("/user/profile/update")
	if err != nil {
		return nil, c.transportError("update profile", err)
	}
	if resp.IsError() {
		return nil, c.apiError(resp)
	}
	return &out, nil
}
