package hints

import (
	"strings"
	"testing"
)

func TestForAssetsDir(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "empty path suggests flag and env var",
			path: "",
			want: "--assets",
		},
		{
			name: "missing directory suggests creating it",
			path: "/definitely/not/a/real/assets/dir",
			want: "existing",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ForAssetsDir(tt.path)
			if !strings.Contains(got, tt.want) {
				t.Errorf("ForAssetsDir(%q) = %q, want substring %q", tt.path, got, tt.want)
			}
			if !strings.HasPrefix(got, "\n  hint: ") {
				t.Errorf("hint %q missing standard prefix", got)
			}
		})
	}

	t.Run("existing directory yields no hint", func(t *testing.T) {
		t.Parallel()

		if got := ForAssetsDir(t.TempDir()); got != "" {
			t.Errorf("ForAssetsDir(existing) = %q, want empty", got)
		}
	})
}

func TestHintFormatting(t *testing.T) {
	t.Parallel()

	for name, hint := range map[string]string{
		"ForAssetNotFound":    ForAssetNotFound(),
		"ForDecodeFailure":    ForDecodeFailure(),
		"ForManifestNotFound": ForManifestNotFound(),
	} {
		if !strings.HasPrefix(hint, "\n  hint: ") {
			t.Errorf("%s = %q, missing standard prefix", name, hint)
		}
	}
}
