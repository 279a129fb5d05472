package config

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/0x0FACED/fortune-dcel/pkg/voronoi"
	"github.com/pkg/errors"
)

// EnvConfigPath - переменная окружения с путем к файлу конфигурации
const EnvConfigPath = "VORONOI_CONFIG"

type BoxConfig struct {
	Left   float64 `json:"left"`
	Bottom float64 `json:"bottom"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
}

func (b BoxConfig) Box() voronoi.Box {
	return voronoi.NewBox(b.Left, b.Bottom, b.Right, b.Top)
}

type Config struct {
	// адрес http сервера
	Addr string `json:"addr"`
	// число сайтов и способ их генерации
	Sites  int   `json:"sites"`
	Random bool  `json:"random"`
	Seed   int64 `json:"seed"`
	// число итераций релаксации Ллойда
	Iterations int `json:"iterations"`

	BoundBox BoxConfig `json:"bound_box"`
	ClipBox  BoxConfig `json:"clip_box"`
	// "keep" или "skip"
	EmptyFaces string `json:"empty_faces"`

	LogLevel  string `json:"log_level"`
	LogStdout bool   `json:"log_stdout"`
}

func Default() *Config {
	return &Config{
		Addr:       ":8080",
		Sites:      100,
		Random:     true,
		Iterations: 0,
		BoundBox:   BoxConfig{-0.05, -0.05, 1.05, 1.05},
		ClipBox:    BoxConfig{0, 0, 1, 1},
		EmptyFaces: voronoi.KeepEmpty.String(),
		LogLevel:   "info",
	}
}

// Load читает JSON файл поверх значений по умолчанию.
// Пустой путь - берется из VORONOI_CONFIG, если и его нет - только значения по умолчанию.
func Load(path string) (*Config, error) {
	conf := Default()

	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		return conf, conf.Validate()
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read config file %s", path)
	}
	if err := json.Unmarshal(buf, conf); err != nil {
		return nil, errors.Wrapf(err, "invalid JSON in config file %s", path)
	}
	if err := conf.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config file %s", path)
	}
	return conf, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("addr is missing")
	}
	if c.Sites <= 0 {
		return errors.Errorf("sites must be positive, got %d", c.Sites)
	}
	if c.Iterations < 0 {
		return errors.Errorf("iterations must not be negative, got %d", c.Iterations)
	}
	if _, ok := voronoi.ParseEmptyFacePolicy(c.EmptyFaces); !ok {
		return errors.Errorf("empty_faces must be keep or skip, got %q", c.EmptyFaces)
	}
	return c.Options().Validate()
}

// Options - параметры построения диаграммы
func (c *Config) Options() voronoi.Options {
	policy, _ := voronoi.ParseEmptyFacePolicy(c.EmptyFaces)
	return voronoi.Options{
		BoundBox:   c.BoundBox.Box(),
		ClipBox:    c.ClipBox.Box(),
		EmptyFaces: policy,
	}
}
