package featureflags

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrictRewrite_DisabledByDefault(t *testing.T) {
	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	// Should be disabled when env var not set
	assert.False(t, manager.IsEnabled(ctx, StrictRewrite))
}

func TestStrictRewrite_EnabledWhenFlagSet(t *testing.T) {
	// Set environment variable
	os.Setenv("TEST_FEATURE_STRICT_REWRITE", "true")
	defer os.Unsetenv("TEST_FEATURE_STRICT_REWRITE")

	manager := NewEnvManager("TEST_FEATURE_")
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, StrictRewrite))
}

func TestEnvManager_MultipleValues(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"true lowercase", "true", true},
		{"TRUE uppercase", "TRUE", true},
		{"1 numeric", "1", true},
		{"enabled", "enabled", true},
		{"ENABLED", "ENABLED", true},
		{"false", "false", false},
		{"0", "0", false},
		{"empty", "", false},
		{"other", "yes", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Setenv("TEST_PREFIX_STRICT_REWRITE", tt.value)
			defer os.Unsetenv("TEST_PREFIX_STRICT_REWRITE")

			manager := NewEnvManager("TEST_PREFIX_")
			ctx := context.Background()

			assert.Equal(t, tt.expected, manager.IsEnabled(ctx, StrictRewrite))
		})
	}
}

func TestEnvManager_DefaultPrefix(t *testing.T) {
	os.Setenv("FEATURE_STRICT_REWRITE", "true")
	defer os.Unsetenv("FEATURE_STRICT_REWRITE")

	manager := NewEnvManager("")
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, StrictRewrite))
}

func TestEnvManager_SetEnabledOverridesEnv(t *testing.T) {
	os.Setenv("TEST_FEATURE_STRICT_REWRITE", "true")
	defer os.Unsetenv("TEST_FEATURE_STRICT_REWRITE")

	manager := NewEnvManager("TEST_FEATURE_")
	manager.SetEnabled(StrictRewrite, false)

	ctx := context.Background()
	assert.False(t, manager.IsEnabled(ctx, StrictRewrite))
}

func TestStaticManager_IsEnabled(t *testing.T) {
	manager := NewStaticManager(map[FeatureFlag]bool{
		StrictRewrite: true,
	})
	ctx := context.Background()

	assert.True(t, manager.IsEnabled(ctx, StrictRewrite))
}

func TestStaticManager_UnknownFlagDisabled(t *testing.T) {
	manager := NewStaticManager(nil)
	ctx := context.Background()

	assert.False(t, manager.IsEnabled(ctx, StrictRewrite))
}

func TestStaticManager_SetEnabled(t *testing.T) {
	manager := NewStaticManager(nil)
	manager.SetEnabled(StrictRewrite, true)

	ctx := context.Background()
	assert.True(t, manager.IsEnabled(ctx, StrictRewrite))
}

func TestWithManager_CarriesManagerThroughContext(t *testing.T) {
	manager := NewStaticManager(map[FeatureFlag]bool{
		StrictRewrite: true,
	})
	ctx := WithManager(context.Background(), manager)

	assert.True(t, IsEnabled(ctx, StrictRewrite))
}

func TestFromContext_DefaultsToAllDisabled(t *testing.T) {
	ctx := context.Background()

	assert.False(t, IsEnabled(ctx, StrictRewrite))
}

func TestEnvManager_GetAllFlags(t *testing.T) {
	os.Setenv("TEST_FEATURE_STRICT_REWRITE", "true")
	defer os.Unsetenv("TEST_FEATURE_STRICT_REWRITE")

	manager := NewEnvManager("TEST_FEATURE_")
	flags := manager.GetAllFlags()

	assert.True(t, flags[StrictRewrite])
}
