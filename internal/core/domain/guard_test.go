package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/buildgate/internal/core/domain"
)

func TestGuardProduction(t *testing.T) {
	valid := domain.DefineMap{
		"APP_ENV":                  "prod",
		"SUPABASE_URL":             "x",
		"SUPABASE_PUBLISHABLE_KEY": "y",
	}

	tests := []struct {
		name          string
		defines       domain.DefineMap
		isProdRelease bool
		wantUnmet     []string
	}{
		{
			name:          "not a prod release with nothing",
			defines:       domain.DefineMap{},
			isProdRelease: false,
		},
		{
			name:          "not a prod release with wrong env",
			defines:       domain.DefineMap{"APP_ENV": "dev"},
			isProdRelease: false,
		},
		{
			name:          "complete prod release",
			defines:       valid,
			isProdRelease: true,
		},
		{
			name:          "empty defines",
			defines:       domain.DefineMap{},
			isProdRelease: true,
			wantUnmet:     []string{"APP_ENV", "SUPABASE_URL", "SUPABASE_PUBLISHABLE_KEY"},
		},
		{
			name:          "dev env only",
			defines:       domain.DefineMap{"APP_ENV": "dev"},
			isProdRelease: true,
			wantUnmet:     []string{"APP_ENV", "SUPABASE_URL", "SUPABASE_PUBLISHABLE_KEY"},
		},
		{
			name: "env value is case sensitive",
			defines: domain.DefineMap{
				"APP_ENV":                  "PROD",
				"SUPABASE_URL":             "x",
				"SUPABASE_PUBLISHABLE_KEY": "y",
			},
			isProdRelease: true,
			wantUnmet:     []string{"APP_ENV"},
		},
		{
			name: "blank url",
			defines: domain.DefineMap{
				"APP_ENV":                  "prod",
				"SUPABASE_URL":             "  \t",
				"SUPABASE_PUBLISHABLE_KEY": "y",
			},
			isProdRelease: true,
			wantUnmet:     []string{"SUPABASE_URL"},
		},
		{
			name: "missing key",
			defines: domain.DefineMap{
				"APP_ENV":      "prod",
				"SUPABASE_URL": "x",
			},
			isProdRelease: true,
			wantUnmet:     []string{"SUPABASE_PUBLISHABLE_KEY"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := domain.GuardProduction(tt.defines, tt.isProdRelease, domain.DefaultProductionRequirements())
			if tt.wantUnmet == nil {
				require.NoError(t, err)
				return
			}

			var abort *domain.AbortError
			require.True(t, errors.As(err, &abort), "expected *domain.AbortError, got %T", err)
			assert.Equal(t, domain.AbortProductionDefines, abort.Reason)
			assert.Equal(t, tt.wantUnmet, abort.Fields)
			assert.Contains(t, err.Error(), "dart_define.prod.json")
			assert.Contains(t, err.Error(), "APP_ENV=prod, SUPABASE_URL, SUPABASE_PUBLISHABLE_KEY")
		})
	}
}

func TestGuardProduction_CustomRequirements(t *testing.T) {
	reqs := domain.ProductionRequirements{
		EnvKey:      "FLAVOR",
		EnvValue:    "production",
		Required:    []string{"API_URL"},
		DefinesFile: "prod.json",
	}

	err := domain.GuardProduction(domain.DefineMap{"FLAVOR": "production"}, true, reqs)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmet: API_URL")
	assert.Contains(t, err.Error(), "--dart-define-from-file=prod.json")

	err = domain.GuardProduction(domain.DefineMap{"FLAVOR": "production", "API_URL": "u"}, true, reqs)
	assert.NoError(t, err)
}

func TestProductionRequirements_Summary(t *testing.T) {
	reqs := domain.DefaultProductionRequirements()
	assert.Equal(t, "APP_ENV=prod, SUPABASE_URL, SUPABASE_PUBLISHABLE_KEY", reqs.Summary())
	assert.Equal(t, []string{"APP_ENV", "SUPABASE_URL", "SUPABASE_PUBLISHABLE_KEY"}, reqs.Names())
}
