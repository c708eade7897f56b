// Package fixtures provides the static dashboard data. The default data set
// is embedded in the binary; an alternate YAML file can be supplied with the
// --data flag.
package fixtures

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zhubert/saasboard/internal/errors"
	"github.com/zhubert/saasboard/internal/projects"
)

//go:embed dashboard.yaml
var defaultData []byte

// Trend is the direction of a stat's change.
type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
)

// Stat is one card in the stats grid.
type Stat struct {
	Label  string `yaml:"label"`
	Value  string `yaml:"value"`
	Change string `yaml:"change"`
	Trend  Trend  `yaml:"trend"`
}

// Activity is one entry of the recent activity feed.
type Activity struct {
	ID     int    `yaml:"id"`
	User   string `yaml:"user"`
	Action string `yaml:"action"`
	Time   string `yaml:"time"`
}

// AlertType is the severity of a system alert.
type AlertType string

const (
	AlertWarning AlertType = "warning"
	AlertError   AlertType = "error"
	AlertInfo    AlertType = "info"
)

// Alert is one system alert.
type Alert struct {
	ID      int       `yaml:"id"`
	Type    AlertType `yaml:"type"`
	Message string    `yaml:"message"`
	Time    string    `yaml:"time"`
}

// Dashboard is the complete fixture set.
type Dashboard struct {
	Stats      []Stat             `yaml:"stats"`
	Activities []Activity         `yaml:"activities"`
	Alerts     []Alert            `yaml:"alerts"`
	Projects   []projects.Project `yaml:"projects"`
}

// Default returns the embedded fixture set.
func Default() (*Dashboard, error) {
	return parse("embedded", defaultData)
}

// MustDefault is Default for callers that cannot proceed without data. The
// embedded file is covered by tests, so a failure is a build defect.
func MustDefault() *Dashboard {
	d, err := Default()
	if err != nil {
		panic(err)
	}
	return d
}

// Load reads fixtures from path, or the embedded set when path is empty.
func Load(path string) (*Dashboard, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.FixturesLoadFailed(path, err)
	}
	return parse(path, data)
}

func parse(source string, data []byte) (*Dashboard, error) {
	var d Dashboard
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, errors.FixturesLoadFailed(source, err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks every section of the fixture set.
func (d *Dashboard) Validate() error {
	for _, s := range d.Stats {
		if s.Label == "" {
			return errors.FixturesInvalid("stat with empty label")
		}
		if s.Trend != TrendUp && s.Trend != TrendDown {
			return errors.FixturesInvalid(fmt.Sprintf("stat %q has unknown trend %q", s.Label, s.Trend))
		}
	}
	for _, a := range d.Alerts {
		switch a.Type {
		case AlertWarning, AlertError, AlertInfo:
		default:
			return errors.FixturesInvalid(fmt.Sprintf("alert %d has unknown type %q", a.ID, a.Type))
		}
	}
	if err := projects.ValidateAll(d.Projects); err != nil {
		return errors.FixturesInvalid(err.Error())
	}
	return nil
}
