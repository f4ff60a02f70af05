package cmd

import (
	"errors"
	"log"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/spigell/ats-advisor/internal/analysis"
	"github.com/spigell/ats-advisor/internal/annotate"
	"github.com/spigell/ats-advisor/internal/categorize"
	"github.com/spigell/ats-advisor/internal/discover"
	"github.com/spigell/ats-advisor/internal/document"
	"github.com/spigell/ats-advisor/internal/lexicon"
	"github.com/spigell/ats-advisor/internal/match"
	"github.com/spigell/ats-advisor/internal/noise"
	"github.com/spigell/ats-advisor/internal/rules"
	"github.com/spigell/ats-advisor/internal/skillness"
)

const (
	app = "ats-advisor"

	customSkillsFile = "habilidades_custom.json"
	noiseFile        = "ruido.json"
	rulesFile        = "reglas.json"
	learnedFile      = "requisitos_aprendidos.json"
)

type Config struct {
	DataDir    string             `mapstructure:"data-dir"`
	NoVectors  bool               `mapstructure:"no-vectors"`
	Vocabulary *VocabularyConfig  `mapstructure:"vocabulary"`
	Thresholds *ThresholdsConfig  `mapstructure:"thresholds"`
	Noise      *NoiseConfig       `mapstructure:"noise"`
	Rules      *RulesConfig       `mapstructure:"rules"`
	AI         *AIConfig          `mapstructure:"ai"`
}

// VocabularyConfig extends the built-in Spanish word lists with domain
// terms.
type VocabularyConfig struct {
	ExtraNouns []string `mapstructure:"extra-nouns"`
	ExtraVerbs []string `mapstructure:"extra-verbs"`
}

type ThresholdsConfig struct {
	Similarity float64 `mapstructure:"similarity"`
	Token      float64 `mapstructure:"token"`
	Match      float64 `mapstructure:"match"`
	Discovery  float64 `mapstructure:"discovery"`

	MisalignMinItems int     `mapstructure:"misalign-min-items"`
	MisalignMaxRatio float64 `mapstructure:"misalign-max-ratio"`
}

type NoiseConfig struct {
	Threshold int `mapstructure:"threshold"`
}

type RulesConfig struct {
	CanonicalTokenCap int `mapstructure:"canonical-token-cap"`
}

type AIConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	Provider        string        `mapstructure:"provider"`
	MinimumFitScore float64       `mapstructure:"minimum-fit-score"`
	TimeoutSeconds  int           `mapstructure:"timeout-seconds"`
	Gemini          *GeminiConfig `mapstructure:"gemini"`
}

type GeminiConfig struct {
	APIKeyFile   string `mapstructure:"api-key-file"`
	Model        string `mapstructure:"model"`
	MaxLogLength int    `mapstructure:"max-log-length"`
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   app,
		Short: "ats-advisor compara hojas de vida contra ofertas laborales como lo haría un ATS",
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	if err := viper.BindEnv("ai.gemini.api-key-file", "GEMINI_API_KEY_FILE"); err != nil {
		log.Fatalf("binding GEMINI_API_KEY_FILE environment variable: %v", err)
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is ats-advisor.yaml in current directory)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app + ".yaml")
	}

	// the tool runs fine on defaults, only a broken config file is fatal
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) && cfgFile == "" {
			return
		}
		log.Fatal(err)
	}
}

func getConfig() (*Config, error) {
	config := &Config{}
	if err := viper.Unmarshal(config); err != nil {
		return nil, err
	}
	if config.DataDir == "" {
		config.DataDir = "."
	}
	return config, nil
}

// pipeline is the wired analysis stack shared by the subcommands.
type pipeline struct {
	annotator  *annotate.Annotator
	lexicon    *lexicon.Lexicon
	skillStore *lexicon.Store
	noise      *noise.Store
	documents  *document.Store
	analyzer   *analysis.Analyzer
	discoverer *discover.Discoverer
}

func buildPipeline(config *Config, logger *zap.Logger) *pipeline {
	annotatorCfg := annotate.Config{Vectors: !config.NoVectors}
	if config.Vocabulary != nil {
		annotatorCfg.ExtraNouns = config.Vocabulary.ExtraNouns
		annotatorCfg.ExtraVerbs = config.Vocabulary.ExtraVerbs
	}
	an := annotate.New(annotatorCfg)

	skillStore := lexicon.NewStore(filepath.Join(config.DataDir, customSkillsFile), logger)
	lex := lexicon.New(an, skillStore, logger)
	scorer := skillness.New(an, lex)

	noiseThreshold := 0
	if config.Noise != nil {
		noiseThreshold = config.Noise.Threshold
	}
	noiseStore := noise.NewStore(filepath.Join(config.DataDir, noiseFile), noiseThreshold, logger)

	var th ThresholdsConfig
	if config.Thresholds != nil {
		th = *config.Thresholds
	}

	cat := categorize.New(an, lex, scorer, categorize.Config{
		SimThreshold:   th.Similarity,
		TokenThreshold: th.Token,
	}, logger)

	ruleSet := rules.NewStore(filepath.Join(config.DataDir, rulesFile), logger).Load()
	if config.Rules != nil && config.Rules.CanonicalTokenCap > 0 {
		ruleSet.CanonicalTokenCap = config.Rules.CanonicalTokenCap
	}
	learned := rules.NewLearnedStore(filepath.Join(config.DataDir, learnedFile), logger)
	engine := rules.New(ruleSet, learned, logger)

	analyzer := analysis.New(an, lex, cat, match.New(an, th.Match), scorer, engine, analysis.Config{
		MisalignMinItems: th.MisalignMinItems,
		MisalignMaxRatio: th.MisalignMaxRatio,
	}, logger)
	discoverer := discover.New(an, lex, scorer, noiseStore, discover.Config{
		AcceptThreshold: th.Discovery,
	}, logger)

	return &pipeline{
		annotator:  an,
		lexicon:    lex,
		skillStore: skillStore,
		noise:      noiseStore,
		documents:  document.NewStore(config.DataDir, logger),
		analyzer:   analyzer,
		discoverer: discoverer,
	}
}
