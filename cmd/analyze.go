package cmd

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/ats-advisor/internal/ai"
	"github.com/spigell/ats-advisor/internal/ai/gemini"
	"github.com/spigell/ats-advisor/internal/analysis"
	"github.com/spigell/ats-advisor/internal/discover"
	"github.com/spigell/ats-advisor/internal/logger"
	"github.com/spigell/ats-advisor/internal/report"
	"github.com/spigell/ats-advisor/internal/secrets"
)

const (
	PromptYes = "Sí"
	PromptNo  = "No"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analiza una hoja de vida contra una oferta laboral",
	Run: func(cmd *cobra.Command, _ []string) {
		analyze(cmd)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringP("offer", "o", "", "archivo de texto con la oferta laboral")
	analyzeCmd.Flags().StringP("cv", "c", "", "archivo de texto con la hoja de vida")
	analyzeCmd.Flags().BoolP("last", "l", false, "reutiliza la última pareja analizada")
	analyzeCmd.Flags().BoolP("yes", "y", false, "no pide confirmaciones interactivas")
	analyzeCmd.Flags().BoolP("export", "e", false, "exporta el reporte JSON a un archivo temporal")
}

func analyze(cmd *cobra.Command) {
	ctx := context.Background()

	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	logger.Info("starting "+app, zap.String("version", version))

	pipe := buildPipeline(config, logger)

	offer, cv := loadTexts(cmd, pipe, logger)

	if analysis.LooksEnglish(offer) {
		logger.Warn("la oferta parece estar en inglés, el análisis solo entiende español",
			zap.String("hint", "traduce la oferta o usa una versión en español"),
		)
		return
	}

	result := pipe.analyzer.Analyze(offer, cv)
	discoveries := pipe.discoverer.Discover(offer)

	verdict := aiVerdict(ctx, config.AI, offer, cv, result, logger)

	doc := report.NewDocument(result, discoveries, verdict)
	fmt.Println(doc.Render())

	pipe.documents.SaveLast(offer, cv)

	if cmd.Flag("export").Value.String() == "true" {
		filename, err := doc.DumpToTmpFile()
		if err != nil {
			logger.Fatal("dumping report to file", zap.Error(err))
		}
		logger.Info("report exported", zap.String("filename", filename))
	}

	if cmd.Flag("yes").Value.String() == "true" || len(discoveries) == 0 {
		return
	}
	if err := offerToSaveDiscoveries(pipe, discoveries, logger); err != nil {
		logger.Fatal("saving discovered skills", zap.Error(err))
	}
}

// loadTexts resolves the posting and CV texts from flags or the last pair.
func loadTexts(cmd *cobra.Command, pipe *pipeline, logger *zap.Logger) (offer, cv string) {
	if cmd.Flag("last").Value.String() == "true" {
		offer, cv = pipe.documents.LastOffer(), pipe.documents.LastCV()
		if offer == "" || cv == "" {
			logger.Fatal("no hay una pareja anterior guardada", zap.String("hint", "usa --offer y --cv"))
		}
		return offer, cv
	}

	offerPath := cmd.Flag("offer").Value.String()
	cvPath := cmd.Flag("cv").Value.String()
	if offerPath == "" || cvPath == "" {
		logger.Fatal("both --offer and --cv are required (or --last)")
	}

	offer = pipe.documents.Load(offerPath)
	cv = pipe.documents.Load(cvPath)
	if offer == "" {
		logger.Fatal("la oferta está vacía o no se pudo leer", zap.String("path", offerPath))
	}
	if cv == "" {
		logger.Fatal("la hoja de vida está vacía o no se pudo leer", zap.String("path", cvPath))
	}
	return offer, cv
}

const defaultAITimeout = 60 * time.Second

// aiVerdict asks the configured advisor for a second opinion. Any failure is
// logged and swallowed: the advisor is advisory only.
func aiVerdict(ctx context.Context, config *AIConfig, offer, cv string, result *analysis.Result, log *zap.Logger) *ai.FitAssessment {
	if config == nil || !config.Enabled {
		return nil
	}

	timeout := defaultAITimeout
	if config.TimeoutSeconds > 0 {
		timeout = time.Duration(config.TimeoutSeconds) * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	advisor, err := newAIAdvisor(ctx, config, log)
	if err != nil {
		log.Warn("skipping AI advisor", zap.Error(err))
		return nil
	}

	findings, err := report.NewDocument(result, nil, nil).JSON()
	if err != nil {
		log.Warn("skipping AI advisor", zap.Error(err))
		return nil
	}

	verdict, err := advisor.Assess(ctx, &ai.Request{
		Offer:    offer,
		CV:       cv,
		Findings: string(findings),
	})
	if err != nil {
		log.Warn("AI advisor failed", zap.Error(err))
		return nil
	}
	return verdict
}

func newAIAdvisor(ctx context.Context, config *AIConfig, log *zap.Logger) (ai.Advisor, error) {
	provider := strings.TrimSpace(strings.ToLower(config.Provider))
	if provider != "" && provider != "gemini" {
		return nil, fmt.Errorf("unsupported ai provider: %s", config.Provider)
	}
	if config.Gemini == nil {
		return nil, fmt.Errorf("gemini configuration is required when the advisor is enabled")
	}

	apiKey, err := secrets.Load(secrets.Source{
		Name: "gemini api key",
		File: config.Gemini.APIKeyFile,
		Env:  "GEMINI_API_KEY",
	})
	if err != nil {
		return nil, fmt.Errorf("%w (set ai.gemini.api-key-file, GEMINI_API_KEY_FILE or GEMINI_API_KEY)", err)
	}

	generator, err := gemini.NewGenerator(ctx, apiKey, config.Gemini.Model, log)
	if err != nil {
		return nil, err
	}

	minScore := config.MinimumFitScore
	if minScore < 0 {
		minScore = 0
	}

	advisorLogger := logger.WithCommonFields(log, "gemini", generator.Model())
	return gemini.NewAdvisor(generator, advisorLogger, minScore, config.Gemini.MaxLogLength), nil
}

func offerToSaveDiscoveries(pipe *pipeline, discoveries []discover.Candidate, logger *zap.Logger) error {
	prompt := promptui.Select{
		Label: "¿Guardar las habilidades detectadas en tu diccionario (como pendientes)?",
		Items: []string{PromptYes, PromptNo},
	}
	_, action, err := prompt.Run()
	if err != nil {
		return err
	}
	if action != PromptYes {
		return nil
	}

	terms := make([]string, 0, len(discoveries))
	for _, c := range discoveries {
		terms = append(terms, c.Term)
	}

	added, rejected, err := pipe.discoverer.SaveCustom(pipe.skillStore, terms)
	if err != nil {
		return err
	}
	logger.Info("custom skills updated",
		zap.Strings("added", added),
		zap.Strings("rejected", rejected),
	)
	return nil
}
