package kempe

import (
	"io"
	"os"

	pcore "honeycomb/pkg/core"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config controls a lattice run. Keys are shared by the YAML file, flag names
// and registry maps.
type Config struct {
	Size       int    `yaml:"size" mapstructure:"size"`
	Iterations int    `yaml:"iterations" mapstructure:"iterations"`
	SeedFile   string `yaml:"seed-file" mapstructure:"seed-file"`
	Record     int    `yaml:"record" mapstructure:"record"`
	Output     string `yaml:"output" mapstructure:"output"`
	MetricsOut string `yaml:"metrics-out" mapstructure:"metrics-out"`
	Archive    string `yaml:"archive" mapstructure:"archive"`
}

// DefaultConfig returns the reference configuration: L=3, 100 iterations,
// first record of the default seed file.
func DefaultConfig() Config {
	return Config{
		Size:       DefaultSize,
		Iterations: 100,
		SeedFile:   pcore.DefaultSeedFile,
		Record:     1,
		Output:     DefaultOutput,
	}
}

// Validate rejects settings no run can use.
func (c Config) Validate() error {
	switch {
	case c.Size < 2 || c.Size > MaxSize:
		return errors.Wrapf(ErrBadSize, "size %d", c.Size)
	case c.Iterations < 0:
		return errors.Wrapf(ErrBadConfig, "iterations %d", c.Iterations)
	case c.Record < 1:
		return errors.Wrapf(ErrBadConfig, "record %d", c.Record)
	}
	return nil
}

// Apply overlays string values (flag-style key/value pairs) onto c. Keys that
// are not config fields are ignored.
func (c *Config) Apply(values map[string]string) error {
	if len(values) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           c,
	})
	if err != nil {
		return errors.Wrap(err, "building config decoder")
	}
	if err := dec.Decode(values); err != nil {
		return errors.Wrapf(ErrBadConfig, "%v", err)
	}
	return nil
}

// FromMap populates a Config from a string map, falling back to the defaults
// when the map cannot be applied.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if err := c.Apply(cfg); err != nil {
		klog.Warningf("ignoring kempe config map: %v", err)
		return DefaultConfig()
	}
	if err := c.Validate(); err != nil {
		klog.Warningf("ignoring kempe config map: %v", err)
		return DefaultConfig()
	}
	return c
}

// LoadConfig reads a YAML file over the defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "opening config")
	}
	defer f.Close()
	return ReadConfig(f)
}

// ReadConfig is LoadConfig for an open stream.
func ReadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && err != io.EOF {
		return Config{}, errors.Wrapf(ErrBadConfig, "%v", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Size, "size", c.Size, "linear lattice size L")
	fs.IntVar(&c.Iterations, "iterations", c.Iterations, "number of Kempe-chain moves")
	fs.StringVar(&c.SeedFile, "seed-file", c.SeedFile, "file of 'seed1 seed2' records")
	fs.IntVar(&c.Record, "record", c.Record, "1-based seed record to use")
	fs.StringVar(&c.Output, "output", c.Output, "where to write the final lattice")
	fs.StringVar(&c.MetricsOut, "metrics-out", c.MetricsOut, "write prometheus metrics to this textfile")
	fs.StringVar(&c.Archive, "archive", c.Archive, "directory of the snapshot archive (empty disables)")
}

// ChangedFlags collects the flags of fs the user actually set, keyed by name,
// ready for Apply.
func ChangedFlags(fs *pflag.FlagSet) map[string]string {
	out := map[string]string{}
	fs.Visit(func(f *pflag.Flag) {
		out[f.Name] = f.Value.String()
	})
	return out
}
