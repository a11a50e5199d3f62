package config

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestStripLineComments(t *testing.T) {
	input := []byte("// top comment\n{\n  // indented comment\n  \"default_profile\": \"X\"\n}\n")
	got := stripLineComments(input)
	want := []byte("{\n  \"default_profile\": \"X\"\n}\n")
	if !bytes.Equal(got, want) {
		t.Errorf("stripLineComments = %q, want %q", got, want)
	}
}

func TestConfigTemplateParses(t *testing.T) {
	cleaned := stripLineComments([]byte(configTemplate))
	var cfg Config
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		t.Fatalf("template does not parse: %v", err)
	}
	def := defaultConfig()
	if cfg.DefaultProfile != def.DefaultProfile {
		t.Errorf("DefaultProfile = %q, want %q", cfg.DefaultProfile, def.DefaultProfile)
	}
	if cfg.DefaultTimezone != def.DefaultTimezone {
		t.Errorf("DefaultTimezone = %q, want %q", cfg.DefaultTimezone, def.DefaultTimezone)
	}
	if cfg.StandardWorkMinutes != def.StandardWorkMinutes {
		t.Errorf("StandardWorkMinutes = %d, want %d", cfg.StandardWorkMinutes, def.StandardWorkMinutes)
	}
	if cfg.Outlook.TenantID != def.Outlook.TenantID {
		t.Errorf("TenantID = %q, want %q", cfg.Outlook.TenantID, def.Outlook.TenantID)
	}
	if cfg.Outlook.ClientID != def.Outlook.ClientID {
		t.Errorf("ClientID = %q, want %q", cfg.Outlook.ClientID, def.Outlook.ClientID)
	}
}
