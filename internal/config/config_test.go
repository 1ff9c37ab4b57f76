package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestInit(t *testing.T) {
	t.Run("initializes with defaults when no config exists", func(t *testing.T) {
		viper.Reset()
		SetConfigPath(filepath.Join(t.TempDir(), "padctl.toml"))
		defer SetConfigPath("")

		if err := Init(); err != nil {
			t.Errorf("Init() failed: %v", err)
		}

		config := Get()
		if config == nil {
			t.Fatal("Get() returned nil after Init()")
		}
		if config.Device.Name != "" {
			t.Errorf("expected empty default device name, got %q", config.Device.Name)
		}
		if len(config.Profile) != 0 {
			t.Errorf("expected empty default profile, got %v", config.Profile)
		}
	})

	t.Run("reads device and profile sections", func(t *testing.T) {
		viper.Reset()

		content := `[device]
name = "alps"
display = ":1"

[logging]
log_level = "debug"

[profile]
tap_and_drag_gesture = true
locked_drags_timeout = 2.5
vertical_scrolling_distance = 75
`
		path := filepath.Join(t.TempDir(), "padctl.toml")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		SetConfigPath(path)
		defer SetConfigPath("")

		if err := Init(); err != nil {
			t.Fatalf("Init() failed: %v", err)
		}

		config := Get()
		if config.Device.Name != "alps" {
			t.Errorf("expected device name alps, got %q", config.Device.Name)
		}
		if config.Device.Display != ":1" {
			t.Errorf("expected display :1, got %q", config.Device.Display)
		}
		if config.Logging.LogLevel != "debug" {
			t.Errorf("expected log level debug, got %q", config.Logging.LogLevel)
		}
		if v, ok := config.Profile["tap_and_drag_gesture"].(bool); !ok || !v {
			t.Errorf("expected tap_and_drag_gesture true, got %v", config.Profile["tap_and_drag_gesture"])
		}
		if v, ok := config.Profile["locked_drags_timeout"].(float64); !ok || v != 2.5 {
			t.Errorf("expected locked_drags_timeout 2.5, got %v", config.Profile["locked_drags_timeout"])
		}
	})

	t.Run("rejects invalid TOML", func(t *testing.T) {
		viper.Reset()

		path := filepath.Join(t.TempDir(), "padctl.toml")
		if err := os.WriteFile(path, []byte("[device\nname = \"x\""), 0644); err != nil {
			t.Fatal(err)
		}
		SetConfigPath(path)
		defer SetConfigPath("")

		if err := Init(); err == nil {
			t.Error("expected an error for invalid TOML")
		}
	})
}

func TestGetConfigPath(t *testing.T) {
	t.Run("override wins", func(t *testing.T) {
		SetConfigPath("/tmp/custom.toml")
		defer SetConfigPath("")

		if got := GetConfigPath(); got != "/tmp/custom.toml" {
			t.Errorf("expected override path, got %q", got)
		}
	})

	t.Run("defaults to user config directory", func(t *testing.T) {
		viper.Reset()
		t.Setenv("HOME", "/home/testuser")

		expected := filepath.Join("/home/testuser", ".config", "padctl", "padctl.toml")
		if got := GetConfigPath(); got != expected {
			t.Errorf("expected %q, got %q", expected, got)
		}
	})
}

func TestSetProfileValue(t *testing.T) {
	viper.Reset()
	path := filepath.Join(t.TempDir(), "padctl.toml")
	SetConfigPath(path)
	defer SetConfigPath("")

	if err := Init(); err != nil {
		t.Fatal(err)
	}
	if err := SetProfileValue("coasting_speed", 20.0); err != nil {
		t.Fatal(err)
	}

	// A fresh load must see the stored value.
	viper.Reset()
	SetConfigPath(path)
	if err := Init(); err != nil {
		t.Fatal(err)
	}
	if v, ok := Get().Profile["coasting_speed"].(float64); !ok || v != 20.0 {
		t.Errorf("expected coasting_speed 20.0 after reload, got %v", Get().Profile["coasting_speed"])
	}
}
