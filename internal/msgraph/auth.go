package msgraph

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
)

// calendarScopes is the minimal permission set for the sync command:
// read-only calendar access plus a refresh token for unattended re-runs.
var calendarScopes = []string{
	"https://graph.microsoft.com/Calendars.Read",
	"offline_access",
}

// tokenCachePath returns where the OAuth2 token is cached, alongside the
// tracker's other state under ~/.workhours.
func tokenCachePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".workhours", "auth", "msgraph_tokens.json"), nil
}

// oauth2Config builds the device-code flow config for the Microsoft identity
// platform. tenantID selects the login endpoint ("common" for personal and
// multi-tenant accounts).
func oauth2Config(tenantID, clientID string) *oauth2.Config {
	base := "https://login.microsoftonline.com/" + tenantID + "/oauth2/v2.0/"
	return &oauth2.Config{
		ClientID: clientID,
		Scopes:   calendarScopes,
		Endpoint: oauth2.Endpoint{
			DeviceAuthURL: base + "devicecode",
			TokenURL:      base + "token",
			AuthStyle:     oauth2.AuthStyleInParams,
		},
	}
}

// loadToken reads the cached token. A missing file is not an error; a
// corrupt one is, so the caller can warn and re-authenticate.
func loadToken() (*oauth2.Token, error) {
	path, err := tokenCachePath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading token cache: %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("corrupt token cache (delete %s to re-authenticate): %w", path, err)
	}
	return &tok, nil
}

// saveToken writes the token cache with the same temp-then-rename dance the
// data store uses.
func saveToken(tok *oauth2.Token) error {
	path, err := tokenCachePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating auth directory: %w", err)
	}
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling token: %w", err)
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("writing token cache: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("saving token cache: %w", err)
	}
	return nil
}

// GetHTTPClient returns a valid Graph token and its config, reusing the
// cached token, refreshing it, or running a fresh device-code flow in that
// order. tenantID and clientID come from the outlook section of
// ~/.workhours/config.json.
func GetHTTPClient(ctx context.Context, tenantID, clientID string) (*oauth2.Token, *oauth2.Config, error) {
	cfg := oauth2Config(tenantID, clientID)

	tok, err := loadToken()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		tok = nil
	}
	if tok != nil && tok.Valid() {
		return tok, cfg, nil
	}

	if tok != nil && tok.RefreshToken != "" {
		refreshed, err := cfg.TokenSource(ctx, tok).Token()
		if err == nil {
			if err := saveToken(refreshed); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not save refreshed token: %v\n", err)
			}
			return refreshed, cfg, nil
		}
		fmt.Fprintf(os.Stderr, "Token refresh failed (%v), re-authenticating...\n", err)
	}

	resp, err := cfg.DeviceAuth(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("device auth request failed: %w", err)
	}

	fmt.Println()
	fmt.Println("To sign in, use a web browser to open the page:")
	fmt.Printf("  %s\n", resp.VerificationURI)
	fmt.Printf("Enter the code: %s\n", resp.UserCode)
	fmt.Println()

	newTok, err := cfg.DeviceAccessToken(ctx, resp)
	if err != nil {
		return nil, nil, fmt.Errorf("device authentication failed: %w", err)
	}
	if err := saveToken(newTok); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save token: %v\n", err)
	}
	return newTok, cfg, nil
}
