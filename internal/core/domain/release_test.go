package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/buildgate/internal/core/domain"
)

func TestClassifyTasks(t *testing.T) {
	tests := []struct {
		name  string
		tasks []string
		want  domain.ReleaseClassification
	}{
		{
			name:  "no tasks",
			tasks: nil,
			want:  domain.ReleaseClassification{},
		},
		{
			name:  "assembleRelease",
			tasks: []string{"assembleRelease"},
			want:  domain.ReleaseClassification{IsRelease: true},
		},
		{
			name:  "bundleProdRelease",
			tasks: []string{"bundleProdRelease"},
			want:  domain.ReleaseClassification{IsRelease: true, IsProdRelease: true},
		},
		{
			name:  "prod and release apart",
			tasks: []string{"prodDebugRelease"},
			want:  domain.ReleaseClassification{IsRelease: true, IsProdRelease: true},
		},
		{
			name:  "release before prod",
			tasks: []string{"releaseForProd"},
			want:  domain.ReleaseClassification{IsRelease: true, IsProdRelease: true},
		},
		{
			name:  "assembleDebug",
			tasks: []string{"assembleDebug"},
			want:  domain.ReleaseClassification{},
		},
		{
			name:  "bundle without release",
			tasks: []string{"bundleDevDebug"},
			want:  domain.ReleaseClassification{IsRelease: true},
		},
		{
			name:  "case insensitive",
			tasks: []string{"ASSEMBLEPRODRELEASE"},
			want:  domain.ReleaseClassification{IsRelease: true, IsProdRelease: true},
		},
		{
			name:  "prod debug only",
			tasks: []string{"assembleProdDebug"},
			want:  domain.ReleaseClassification{},
		},
		{
			name:  "prod and release in different tasks",
			tasks: []string{"assembleProdDebug", "assembleDevRelease"},
			want:  domain.ReleaseClassification{IsRelease: true},
		},
		{
			name:  "permissive substring match",
			tasks: []string{"reproductionrelease"},
			want:  domain.ReleaseClassification{IsRelease: true, IsProdRelease: true},
		},
		{
			name:  "any task decides",
			tasks: []string{"clean", ":app:bundleProdRelease"},
			want:  domain.ReleaseClassification{IsRelease: true, IsProdRelease: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.ClassifyTasks(tt.tasks))
		})
	}
}
