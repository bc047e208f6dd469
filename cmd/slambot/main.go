package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/robolab/slambot/internal/config"
	"github.com/robolab/slambot/internal/robot"
	"github.com/robolab/slambot/internal/scenario"
	"github.com/robolab/slambot/internal/trajectory"
	"github.com/robolab/slambot/internal/tui"
	"github.com/robolab/slambot/internal/viz"
)

var (
	worldSize        float64
	measurementRange float64
	motionNoise      float64
	measurementNoise float64
	numLandmarks     int
	steps            int
	stepDistance     float64
	seed             int64
	configFile       string
	preset           string
	csvPath          string
	jsonPath         string
	showPlot         bool
	showGrid         bool
	plotHeight       int
	frameRate        int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "slambot",
		Short: "2D robot world simulator for SLAM exercises",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a sense-then-move trajectory",
		RunE:  runScenario,
	}
	addRobotFlags(runCmd)
	runCmd.Flags().StringVar(&csvPath, "csv", "", "export trajectory to CSV file")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "export trajectory to JSON file")
	runCmd.Flags().BoolVar(&showPlot, "plot", false, "plot the pose track")
	runCmd.Flags().BoolVar(&showGrid, "grid", false, "print the final world grid")
	runCmd.Flags().IntVar(&plotHeight, "plot-height", 10, "track plot height")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with a live terminal view",
		RunE:  runLive,
	}
	addRobotFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 10, "frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addRobotFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&worldSize, "world", config.DefaultWorldSize, "world size per axis")
	cmd.Flags().Float64Var(&measurementRange, "range", config.DefaultMeasurementRange, "sensing range per axis, -1 for unlimited")
	cmd.Flags().Float64Var(&motionNoise, "motion-noise", config.DefaultMotionNoise, "motion noise scale")
	cmd.Flags().Float64Var(&measurementNoise, "measurement-noise", config.DefaultMeasurementNoise, "measurement noise scale")
	cmd.Flags().IntVar(&numLandmarks, "landmarks", config.DefaultLandmarks, "number of landmarks")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of time steps")
	cmd.Flags().Float64Var(&stepDistance, "distance", config.DefaultStepDistance, "distance per step")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig resolves preset, config file, and flags, in rising precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("world") {
		cfg.WorldSize = worldSize
	}
	if cmd.Flags().Changed("range") {
		cfg.MeasurementRange = measurementRange
	}
	if cmd.Flags().Changed("motion-noise") {
		cfg.MotionNoise = motionNoise
	}
	if cmd.Flags().Changed("measurement-noise") {
		cfg.MeasurementNoise = measurementNoise
	}
	if cmd.Flags().Changed("landmarks") {
		cfg.Landmarks = numLandmarks
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if cmd.Flags().Changed("distance") {
		cfg.StepDistance = stepDistance
	}
	if cfg.Seed != 0 && !cmd.Flags().Changed("seed") {
		seed = cfg.Seed
	}

	return cfg, cfg.Validate()
}

// newRunner builds a fresh robot, landmarks, and runner from the config,
// reseeding from the resolved seed so repeat calls replay the same run.
func newRunner(cfg *config.Config) (*scenario.Runner, error) {
	src := robot.NewSeededSource(seed)
	bot, err := cfg.NewRobot(src)
	if err != nil {
		return nil, err
	}
	if err := bot.MakeLandmarks(cfg.Landmarks); err != nil {
		return nil, err
	}
	return scenario.New(bot, src, scenario.Config{
		Steps:        cfg.Steps,
		StepDistance: cfg.StepDistance,
	})
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	runner, err := newRunner(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("running %d steps in a %.0f world (seed %d)...\n", cfg.Steps, cfg.WorldSize, seed)
	start := time.Now()

	log, err := runner.Run()
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("steps: %d\n", log.Len())

	sensed := 0
	for _, step := range log.Steps() {
		sensed += len(step.Measurements)
	}
	fmt.Printf("measurements: %d\n", sensed)
	fmt.Println(runner.Robot())

	if csvPath != "" {
		if err := trajectory.ExportCSV(csvPath, log); err != nil {
			return err
		}
		fmt.Printf("trajectory written to %s\n", csvPath)
	}
	if jsonPath != "" {
		if err := trajectory.ExportJSON(jsonPath, log); err != nil {
			return err
		}
		fmt.Printf("trajectory written to %s\n", jsonPath)
	}

	if showGrid {
		fmt.Println()
		fmt.Print(viz.RenderRobot(runner.Robot()))
	}
	if showPlot {
		xs, ys := runner.Track()
		fmt.Println()
		fmt.Print(viz.PlotTrack(xs, ys, plotHeight))
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	return tui.Run(func() (*scenario.Runner, error) {
		return newRunner(cfg)
	}, frameRate)
}
