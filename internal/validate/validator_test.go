package validate

import (
	"testing"

	"sysforge/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmptyConfiguration(t *testing.T) {
	errs := Validate(&config.Configuration{})
	assert.Empty(t, errs)
}

func TestPathGrammar(t *testing.T) {
	cases := []struct {
		path  string
		valid bool
	}{
		{"/boot/vmlinuz", true},
		{"/boot/vmlinuz-6.1_lts", true},
		{"/", true},
		{"/boot/../etc/passwd", false},
		{"relative/path", false},
		{"", false},
		{"/boot/vm linuz", false},
		{"/boot/vml*nuz", false},
	}

	for _, tc := range cases {
		reason := checkPath(tc.path)
		if tc.valid {
			assert.Empty(t, reason, "path %q should be valid", tc.path)
		} else {
			assert.NotEmpty(t, reason, "path %q should be invalid", tc.path)
		}
	}
}

func TestConflictingBootEntries(t *testing.T) {
	cfg := &config.Configuration{
		Boot: config.BootConfig{
			Entries: []config.BootEntry{
				{Title: "A", Kernel: "/boot/vmlinuz"},
				{Title: "A", Kernel: "/boot/vmlinuz-lts"},
				{Title: "B", Kernel: "/boot/vmlinuz-zen"},
			},
		},
	}

	errs := Validate(cfg)
	require.Len(t, errs, 1)

	conflict, ok := errs[0].(ConflictingBootEntries)
	require.True(t, ok, "expected ConflictingBootEntries, got %T", errs[0])
	assert.Equal(t, "A", conflict.Title)
	assert.Equal(t, 2, conflict.Count)
}

func TestInvalidKernelPath(t *testing.T) {
	cfg := &config.Configuration{
		Boot: config.BootConfig{
			Entries: []config.BootEntry{
				{Title: "A", Kernel: "boot/vmlinuz"},
			},
		},
	}

	errs := Validate(cfg)
	require.Len(t, errs, 1)
	invalid, ok := errs[0].(InvalidPath)
	require.True(t, ok)
	assert.Equal(t, "boot/vmlinuz", invalid.Value)
}

func TestKernelParameters(t *testing.T) {
	cfg := &config.Configuration{
		Boot: config.BootConfig{
			KernelParameters: []string{"quiet", "root=/dev/sda1", "bad param", "loglevel=3"},
		},
	}

	errs := Validate(cfg)
	require.Len(t, errs, 1)
	invalid, ok := errs[0].(InvalidKernelParameter)
	require.True(t, ok)
	assert.Equal(t, "bad param", invalid.Value)
}

func TestSplashThemeCatalogueOrIdentifier(t *testing.T) {
	for _, theme := range []string{"bgrt", "spinner", "my_custom-theme"} {
		cfg := &config.Configuration{Boot: config.BootConfig{SplashTheme: theme}}
		assert.Empty(t, Validate(cfg), "theme %q should be accepted", theme)
	}

	cfg := &config.Configuration{Boot: config.BootConfig{SplashTheme: "no/slashes allowed"}}
	errs := Validate(cfg)
	require.Len(t, errs, 1)
	assert.IsType(t, InvalidSplashTheme{}, errs[0])
}

func TestInitramfsHooks(t *testing.T) {
	cfg := &config.Configuration{
		Boot: config.BootConfig{
			InitramfsHooks: []string{"base", "udev", "my-hook", "bad hook"},
		},
	}

	errs := Validate(cfg)
	require.Len(t, errs, 1)
	invalid, ok := errs[0].(InvalidInitramfsHook)
	require.True(t, ok)
	assert.Equal(t, "bad hook", invalid.Value)
}

func TestSecureBootOptional(t *testing.T) {
	// Absent block: no errors.
	errs := Validate(&config.Configuration{})
	assert.Empty(t, errs)

	// Present block with a bad certificate path: one error per bad path.
	cfg := &config.Configuration{
		Security: config.SecurityConfig{
			SecureBoot: &config.SecureBootConfig{
				PKCertPath:  "/etc/sb/PK.crt",
				KEKCertPath: "relative/KEK.crt",
				DBCertPath:  "/etc/sb/db.crt",
			},
		},
	}
	errs = Validate(cfg)
	require.Len(t, errs, 1)
	invalid, ok := errs[0].(InvalidCertificatePath)
	require.True(t, ok)
	assert.Equal(t, "relative/KEK.crt", invalid.Value)
}

func TestDuplicateUsers(t *testing.T) {
	cfg := &config.Configuration{
		Users: []config.User{
			{Name: "deploy"},
			{Name: "deploy"},
			{Name: "web"},
		},
	}

	errs := Validate(cfg)
	require.Len(t, errs, 1)
	dup, ok := errs[0].(DuplicateUser)
	require.True(t, ok)
	assert.Equal(t, "deploy", dup.Name)
}

func TestInvalidUsername(t *testing.T) {
	cfg := &config.Configuration{
		Users: []config.User{{Name: "1badname"}},
	}

	errs := Validate(cfg)
	require.Len(t, errs, 1)
	assert.IsType(t, InvalidUsername{}, errs[0])
}

func TestInterfaceNames(t *testing.T) {
	cfg := &config.Configuration{
		Network: config.NetworkConfig{
			Interfaces: []config.NetworkInterface{
				{Name: "eth0"},
				{Name: "enp0s31f6"},
				{Name: "this-name-is-way-too-long-for-the-kernel"},
			},
		},
	}

	errs := Validate(cfg)
	require.Len(t, errs, 1)
	assert.IsType(t, InvalidInterfaceName{}, errs[0])
}

func TestFirewallPortRange(t *testing.T) {
	cfg := &config.Configuration{
		Network: config.NetworkConfig{
			FirewallRules: []config.FirewallRule{
				{Port: 443, Allow: true},
				{Port: 0, Allow: true},
				{Port: 70000, Allow: false},
			},
		},
	}

	errs := Validate(cfg)
	require.Len(t, errs, 2)
}

func TestLayerDependencies(t *testing.T) {
	cfg := &config.Configuration{
		Packages: config.PackagesConfig{
			Layers: []config.PackageLayer{
				{Name: "base", Packages: []string{"coreutils"}},
				{Name: "web", DependsOn: []string{"base", "missing"}},
			},
		},
	}

	errs := Validate(cfg)
	require.Len(t, errs, 1)
	unknown, ok := errs[0].(UnknownLayerDependency)
	require.True(t, ok)
	assert.Equal(t, "web", unknown.Layer)
	assert.Equal(t, "missing", unknown.DependsOn)
}

func TestCollectsAcrossSubsystems(t *testing.T) {
	// One defect in each of three subsystems; all three must be reported in
	// a single call.
	cfg := &config.Configuration{
		Boot: config.BootConfig{
			Entries: []config.BootEntry{
				{Title: "A", Kernel: "/boot/vmlinuz"},
				{Title: "A", Kernel: "/boot/vmlinuz-lts"},
			},
		},
		Users: []config.User{{Name: "Bad Name"}},
		Hardware: config.HardwareConfig{
			KernelModules: []string{"i915", "not a module"},
		},
	}

	errs := Validate(cfg)
	require.Len(t, errs, 3)

	byType := map[string]bool{}
	for _, err := range errs {
		switch err.(type) {
		case ConflictingBootEntries:
			byType["boot"] = true
		case InvalidUsername:
			byType["user"] = true
		case InvalidModuleName:
			byType["module"] = true
		}
	}
	assert.Len(t, byType, 3)
}

func TestDeterministicOrder(t *testing.T) {
	cfg := &config.Configuration{
		Security: config.SecurityConfig{
			Sysctl: map[string]string{
				"Not Valid One": "1",
				"Also Invalid":  "2",
				"BAD":           "3",
			},
		},
	}

	first := Validate(cfg)
	second := Validate(cfg)
	require.Equal(t, first, second)
	require.Len(t, first, 3)
}
