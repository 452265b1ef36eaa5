package ingest

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// SourceConfig is one form family's input location.
type SourceConfig struct {
	Dir           string `yaml:"dir"`
	QuarantineDir string `yaml:"quarantine_dir"`
}

// SourcesConfig accepts either:
//  1. mapping form (preferred):
//     sources:
//     insider: /data/feeds/insider
//     formd:   {dir: /data/feeds/formd, quarantine_dir: /data/bad}
//  2. legacy list form:
//     sources:
//     - family: insider
//     dir: /data/feeds/insider
type SourcesConfig struct {
	Items map[string]SourceConfig
}

func (s *SourcesConfig) UnmarshalYAML(value *yaml.Node) error {
	if value == nil {
		return nil
	}
	switch value.Kind {
	case yaml.MappingNode:
		items := make(map[string]SourceConfig, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			k := value.Content[i]
			v := value.Content[i+1]
			family := strings.TrimSpace(k.Value)
			if family == "" {
				continue
			}
			switch v.Kind {
			case yaml.ScalarNode:
				dir := strings.TrimSpace(v.Value)
				if dir == "" {
					continue
				}
				items[family] = SourceConfig{Dir: dir}
			case yaml.MappingNode:
				var tmp SourceConfig
				if err := v.Decode(&tmp); err != nil {
					return err
				}
				if strings.TrimSpace(tmp.Dir) == "" {
					continue
				}
				items[family] = SourceConfig{
					Dir:           strings.TrimSpace(tmp.Dir),
					QuarantineDir: strings.TrimSpace(tmp.QuarantineDir),
				}
			default:
				continue
			}
		}
		s.Items = items
		return nil
	case yaml.SequenceNode:
		var list []struct {
			Family        string `yaml:"family"`
			Dir           string `yaml:"dir"`
			QuarantineDir string `yaml:"quarantine_dir"`
		}
		if err := value.Decode(&list); err != nil {
			return err
		}
		items := make(map[string]SourceConfig, len(list))
		for _, it := range list {
			family := strings.TrimSpace(it.Family)
			if family == "" || strings.TrimSpace(it.Dir) == "" {
				continue
			}
			items[family] = SourceConfig{Dir: strings.TrimSpace(it.Dir), QuarantineDir: strings.TrimSpace(it.QuarantineDir)}
		}
		s.Items = items
		return nil
	default:
		// ignore other kinds
		return nil
	}
}

// FileConfig is the on-disk YAML configuration.
type FileConfig struct {
	DB        string        `yaml:"db"`
	Sources   SourcesConfig `yaml:"sources"`
	BatchSize int           `yaml:"batch_size"`
	Workers   int           `yaml:"workers"`
	// CIKs restricts loading to the listed registrants where tables carry
	// a CIK column. Empty means load everything.
	CIKs  []string `yaml:"ciks"`
	Debug bool     `yaml:"debug"`
}

func LoadConfig(path string) (*FileConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// RunnerConfigFromFile maps file settings onto a RunnerConfig.
func RunnerConfigFromFile(cfg *FileConfig) RunnerConfig {
	rc := RunnerConfig{
		DBPath:    cfg.DB,
		Sources:   cfg.Sources.Items,
		BatchSize: cfg.BatchSize,
		Workers:   cfg.Workers,
		CIKs:      cfg.CIKs,
		Debug:     cfg.Debug,
	}
	return rc
}
