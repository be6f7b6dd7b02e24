package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/buildgate/internal/core/domain"
)

func TestResolveVariant(t *testing.T) {
	project := domain.DefaultProject("/project")

	tests := []struct {
		name  string
		tasks []string
		want  domain.Variant
	}{
		{
			name:  "prod release",
			tasks: []string{"bundleProdRelease"},
			want: domain.Variant{
				Name:          "prodRelease",
				Flavor:        "prod",
				BuildType:     domain.BuildTypeRelease,
				ApplicationID: "com.gooun.works.coffeelog",
				DisplayName:   "커피로그",
			},
		},
		{
			name:  "dev debug",
			tasks: []string{"assembleDevDebug"},
			want: domain.Variant{
				Name:          "devDebug",
				Flavor:        "dev",
				BuildType:     domain.BuildTypeDebug,
				ApplicationID: "com.gooun.works.coffeelog.dev",
				DisplayName:   "커피로그 DEV",
			},
		},
		{
			name:  "no flavor",
			tasks: []string{"assembleRelease"},
			want: domain.Variant{
				Name:          "release",
				BuildType:     domain.BuildTypeRelease,
				ApplicationID: "com.gooun.works.coffeelog",
			},
		},
		{
			name:  "no tasks",
			tasks: nil,
			want: domain.Variant{
				Name:          "debug",
				BuildType:     domain.BuildTypeDebug,
				ApplicationID: "com.gooun.works.coffeelog",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := domain.ClassifyTasks(tt.tasks)
			assert.Equal(t, tt.want, domain.ResolveVariant(tt.tasks, c, project))
		})
	}
}

func TestResolveVariant_FlavorOrder(t *testing.T) {
	project := &domain.Project{
		ApplicationID: "app",
		Flavors: []domain.Flavor{
			{Name: "staging", ApplicationIDSuffix: ".stg"},
			{Name: "prod"},
		},
	}

	v := domain.ResolveVariant([]string{"assembleProdRelease", "assembleStagingRelease"},
		domain.ReleaseClassification{IsRelease: true}, project)

	assert.Equal(t, "staging", v.Flavor)
	assert.Equal(t, "stagingRelease", v.Name)
	assert.Equal(t, "app.stg", v.ApplicationID)
}
