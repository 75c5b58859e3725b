package storage

import "github.com/flagstorage/aconfig/internal/options"

// buildConfig holds the settings every Build* function accepts through
// BuildOption.
type buildConfig struct {
	version uint32
}

// BuildOption configures a Build* call, following the teacher's generic
// functional-options pattern (internal/options.Option applied to a
// pointer-to-config target).
type BuildOption = options.Option[*buildConfig]

// WithVersion overrides the file format version written into the header.
// Most callers should leave this at its default (MaxSupportedFileVersion).
func WithVersion(version uint32) BuildOption {
	return options.NoError[*buildConfig](func(cfg *buildConfig) {
		cfg.version = version
	})
}

func newBuildConfig(opts []BuildOption) (*buildConfig, error) {
	cfg := &buildConfig{version: MaxSupportedFileVersion}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
