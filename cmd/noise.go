package cmd

import (
	"fmt"
	"log"
	"sort"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/ats-advisor/internal/logger"
)

const (
	noiseMenuList      = "Ver términos de ruido"
	noiseMenuForget    = "Olvidar un término"
	noiseMenuThreshold = "Probar otro umbral"
	noiseMenuExit      = "Salir"
)

var noiseCmd = &cobra.Command{
	Use:   "noise",
	Short: "Administra los términos marcados como ruido por el descubridor",
	Run: func(_ *cobra.Command, _ []string) {
		withNoiseStore(noiseMenu)
	},
}

var noiseListCmd = &cobra.Command{
	Use:   "list",
	Short: "Muestra los términos de ruido más frecuentes",
	Run: func(_ *cobra.Command, _ []string) {
		withNoiseStore(func(pipe *pipeline, _ *zap.Logger) error {
			printNoiseTop(pipe)
			return nil
		})
	},
}

var noiseForgetCmd = &cobra.Command{
	Use:   "forget <término>",
	Short: "Olvida un término de ruido para que pueda proponerse de nuevo",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		withNoiseStore(func(pipe *pipeline, logger *zap.Logger) error {
			if !pipe.noise.Forget(args[0]) {
				return fmt.Errorf("el término %q no está registrado como ruido", args[0])
			}
			logger.Info("noise term forgotten", zap.String("term", args[0]))
			return nil
		})
	},
}

var noiseThresholdCmd = &cobra.Command{
	Use:   "threshold <n>",
	Short: "Muestra qué términos quedarían excluidos con otro umbral",
	Long: "Aplica el umbral a los contadores actuales y lista los términos que " +
		"quedarían excluidos. Para hacerlo permanente usa noise.threshold en el " +
		"archivo de configuración.",
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		withNoiseStore(func(pipe *pipeline, _ *zap.Logger) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 1 {
				return fmt.Errorf("threshold must be a positive integer, got %q", args[0])
			}
			printExcludedAt(pipe, n)
			return nil
		})
	},
}

// noiseMenu is the interactive counterpart of the subcommands.
func noiseMenu(pipe *pipeline, logger *zap.Logger) error {
	menu := promptui.Select{
		Label: "Gestión de ruido",
		Items: []string{noiseMenuList, noiseMenuForget, noiseMenuThreshold, noiseMenuExit},
	}
	for {
		_, action, err := menu.Run()
		if err != nil {
			return err
		}
		switch action {
		case noiseMenuList:
			printNoiseTop(pipe)
		case noiseMenuForget:
			if err := forgetNoiseTerm(pipe, logger); err != nil {
				return err
			}
		case noiseMenuThreshold:
			if err := previewThreshold(pipe); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func printNoiseTop(pipe *pipeline) {
	entries := pipe.noise.Top(20)
	if len(entries) == 0 {
		fmt.Println("No hay términos de ruido registrados.")
		return
	}
	threshold := pipe.noise.Threshold()
	fmt.Printf("Umbral de exclusión: %d marcas\n", threshold)
	for _, e := range entries {
		state := ""
		if e.Count >= threshold {
			state = "  [excluido]"
		}
		fmt.Printf("%3d  %s%s\n", e.Count, e.Term, state)
	}
}

func forgetNoiseTerm(pipe *pipeline, logger *zap.Logger) error {
	entries := pipe.noise.Top(20)
	if len(entries) == 0 {
		fmt.Println("No hay términos de ruido registrados.")
		return nil
	}
	items := make([]string, 0, len(entries))
	for _, e := range entries {
		items = append(items, e.Term)
	}
	pick := promptui.Select{
		Label: "Elige el término a olvidar",
		Items: append(items, noiseMenuExit),
	}
	_, term, err := pick.Run()
	if err != nil {
		return err
	}
	if term == noiseMenuExit {
		return nil
	}
	if pipe.noise.Forget(term) {
		logger.Info("noise term forgotten", zap.String("term", term))
	}
	return nil
}

func previewThreshold(pipe *pipeline) error {
	ask := promptui.Prompt{
		Label: "Nuevo umbral",
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 {
				return fmt.Errorf("debe ser un entero positivo")
			}
			return nil
		},
	}
	raw, err := ask.Run()
	if err != nil {
		return err
	}
	n, _ := strconv.Atoi(raw)
	printExcludedAt(pipe, n)
	return nil
}

func printExcludedAt(pipe *pipeline, n int) {
	pipe.noise.SetThreshold(n)

	excluded := pipe.noise.Excluded()
	if len(excluded) == 0 {
		fmt.Printf("Ningún término alcanza %d marcas.\n", n)
		return
	}
	terms := make([]string, 0, len(excluded))
	for term := range excluded {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	fmt.Printf("Con umbral %d quedan excluidos:\n", n)
	for _, term := range terms {
		fmt.Println("  " + term)
	}
}

func init() {
	rootCmd.AddCommand(noiseCmd)
	noiseCmd.AddCommand(noiseListCmd)
	noiseCmd.AddCommand(noiseForgetCmd)
	noiseCmd.AddCommand(noiseThresholdCmd)
}

func withNoiseStore(fn func(pipe *pipeline, logger *zap.Logger) error) {
	logger, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		logger.Fatal("getting a config", zap.Error(err))
	}

	if err := fn(buildPipeline(config, logger), logger); err != nil {
		logger.Fatal("noise command failed", zap.Error(err))
	}
}
