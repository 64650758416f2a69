package auth

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	stateCookie = "oauth_state"
	userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// GoogleHandler runs the Google OAuth code flow and hands out session
// tokens. This is the whole sign-in surface: everything past the callback
// is plain Bearer-token middleware.
type GoogleHandler struct {
	Config     *oauth2.Config
	JWTSecret  string
	SessionTTL time.Duration
}

func NewGoogleHandler(clientID, clientSecret, redirectURL, jwtSecret string, sessionTTL time.Duration) *GoogleHandler {
	return &GoogleHandler{
		Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email"},
			Endpoint:     google.Endpoint,
		},
		JWTSecret:  jwtSecret,
		SessionTTL: sessionTTL,
	}
}

// SignIn redirects the browser to Google's consent page. The random state
// goes into a short-lived cookie and is checked again on callback.
func (h *GoogleHandler) SignIn(c *gin.Context) {
	state, err := randomState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start sign-in: " + err.Error()})
		return
	}
	c.SetCookie(stateCookie, state, 300, "/", "", false, true)
	c.Redirect(http.StatusFound, h.Config.AuthCodeURL(state, oauth2.AccessTypeOffline))
}

// Callback exchanges the authorization code, looks up the Google account's
// email and responds with a session token.
func (h *GoogleHandler) Callback(c *gin.Context) {
	wantState, err := c.Cookie(stateCookie)
	if err != nil || wantState == "" || c.Query("state") != wantState {
		c.JSON(http.StatusBadRequest, gin.H{"error": "OAuth state mismatch"})
		return
	}
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing authorization code"})
		return
	}

	tok, err := h.Config.Exchange(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Code exchange failed: " + err.Error()})
		return
	}

	email, err := h.fetchEmail(c, tok)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch account info: " + err.Error()})
		return
	}

	session, err := NewSessionToken(h.JWTSecret, email, h.SessionTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mint session: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": session, "email": email})
}

func (h *GoogleHandler) fetchEmail(c *gin.Context, tok *oauth2.Token) (string, error) {
	client := h.Config.Client(c.Request.Context(), tok)
	resp, err := client.Get(userinfoURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("userinfo returned %s", resp.Status)
	}

	var info struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", err
	}
	if info.Email == "" {
		return "", fmt.Errorf("userinfo response had no email")
	}
	return info.Email, nil
}

func randomState() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
