// Command robowire is a diagnostic tool for the supported robots: it
// opens the device named in the config file, runs one operation, and
// prints the result.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/fieldbotics/robowire/internal/brick"
	"github.com/fieldbotics/robowire/internal/config"
	"github.com/fieldbotics/robowire/internal/rover"
	"github.com/fieldbotics/robowire/internal/serialio"
	"github.com/fieldbotics/robowire/internal/sweeper"
	"github.com/fieldbotics/robowire/internal/trace"
	"github.com/fieldbotics/robowire/internal/wire"
)

var (
	configPath = flag.String("config", "robowire.toml", "Path to config file")
	verbose    = flag.Bool("v", false, "Enable debug logging")
)

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: robowire [flags] <command>

Commands:
  sweeper-status   refresh and print the floor cleaner's sensor state
  sweeper-dock     send the floor cleaner to its charging dock
  brick-battery    print the brick's battery voltage
  brick-info       print the brick's name, signal strength and free flash
  rover-report     print the rover's position report
  rover-home       drive the rover to its home position

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*verbose {
		logger = logger.Level(zerolog.InfoLevel)
	}

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	command := flag.Arg(0)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	if err := run(command, cfg, logger); err != nil {
		var derr *wire.DeviceError
		if errors.As(err, &derr) {
			logger.Fatal().Int("code", derr.Code).Str("name", derr.Name).Msg("device reported an error")
		}
		logger.Fatal().Err(err).Msg(command + " failed")
	}
}

func run(command string, cfg *config.Config, logger zerolog.Logger) error {
	switch command {
	case "sweeper-status":
		return sweeperStatus(cfg, logger)
	case "sweeper-dock":
		return sweeperDock(cfg, logger)
	case "brick-battery":
		return brickBattery(cfg, logger)
	case "brick-info":
		return brickInfo(cfg, logger)
	case "rover-report":
		return roverReport(cfg, logger)
	case "rover-home":
		return roverHome(cfg, logger)
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

// openSerial opens the configured serial device, wrapping it in the
// exchange recorder when tracing is enabled.
func openSerial(dev config.SerialDevice, tr config.Trace, logger zerolog.Logger) (wire.Conn, func(), error) {
	conn, err := serialio.Open(dev.Port, dev.Serial)
	if err != nil {
		return nil, nil, err
	}
	var c wire.Conn = conn
	cleanup := func() { conn.Close() }

	if tr.Enabled {
		f, err := os.OpenFile(tr.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("failed to open trace log: %w", err)
		}
		traced := trace.New(c, f)
		logger.Debug().Str("session", traced.Session()).Str("path", tr.Path).Msg("tracing exchanges")
		c = traced
		cleanup = func() {
			traced.Close()
			f.Close()
		}
	}
	return c, cleanup, nil
}

func sweeperStatus(cfg *config.Config, logger zerolog.Logger) error {
	conn, cleanup, err := openSerial(cfg.Sweeper, cfg.Trace, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	codec := sweeper.NewCodec(conn, cfg.Sweeper.SerialTimeout(sweeper.DefaultTimeout))
	if err := codec.Start(); err != nil {
		return err
	}

	sess := sweeper.NewSession(codec)
	if err := sess.Refresh(sweeper.SelectAll); err != nil {
		return err
	}
	s, err := sess.State()
	if err != nil {
		return err
	}

	logger.Info().
		Bool("wall", s.Wall()).
		Bool("bump_left", s.BumpLeft()).
		Bool("bump_right", s.BumpRight()).
		Int("charging_state", s.ChargingState()).
		Int("voltage_mv", s.VoltageMV()).
		Int("current_ma", s.CurrentMA()).
		Int("temperature_c", s.TemperatureC()).
		Int("charge_mah", s.ChargeMAH()).
		Int("capacity_mah", s.CapacityMAH()).
		Msg("sweeper state")
	return nil
}

func sweeperDock(cfg *config.Config, logger zerolog.Logger) error {
	conn, cleanup, err := openSerial(cfg.Sweeper, cfg.Trace, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	codec := sweeper.NewCodec(conn, cfg.Sweeper.SerialTimeout(sweeper.DefaultTimeout))
	if err := codec.Start(); err != nil {
		return err
	}
	if err := codec.Control(); err != nil {
		return err
	}
	if err := codec.Dock(); err != nil {
		return err
	}
	logger.Info().Msg("dock command sent")
	return nil
}

func brickBattery(cfg *config.Config, logger zerolog.Logger) error {
	conn, cleanup, err := openSerial(cfg.Brick, cfg.Trace, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	codec := brick.NewCodec(conn, cfg.Brick.SerialTimeout(brick.DefaultTimeout))
	mv, err := codec.BatteryLevel()
	if err != nil {
		return err
	}
	logger.Info().Int("battery_mv", mv).Msg("brick battery")
	return nil
}

func brickInfo(cfg *config.Config, logger zerolog.Logger) error {
	conn, cleanup, err := openSerial(cfg.Brick, cfg.Trace, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	codec := brick.NewCodec(conn, cfg.Brick.SerialTimeout(brick.DefaultTimeout))
	info, err := codec.GetDeviceInfo()
	if err != nil {
		return err
	}
	version, err := codec.GetFirmwareVersion()
	if err != nil {
		return err
	}
	logger.Info().
		Str("name", info.Name).
		Uint32("signal_strength", info.SignalStrength).
		Uint32("free_flash", info.FreeFlash).
		Str("firmware", fmt.Sprintf("%d.%d", version.FirmwareMajor, version.FirmwareMinor)).
		Msg("brick info")
	return nil
}

func roverReport(cfg *config.Config, logger zerolog.Logger) error {
	client := rover.NewClient(cfg.Rover.BaseURL, nil, cfg.Rover.QueryTimeout(rover.DefaultTimeout))
	r, err := client.GetReport()
	if err != nil {
		return err
	}
	logger.Info().
		Float64("x", r.X).
		Float64("y", r.Y).
		Float64("theta", r.Theta).
		Int("room", r.RoomID).
		Int("signal_strength", r.SignalStrength).
		Msg("rover position")
	return nil
}

func roverHome(cfg *config.Config, logger zerolog.Logger) error {
	client := rover.NewClient(cfg.Rover.BaseURL, nil, cfg.Rover.QueryTimeout(rover.DefaultTimeout))
	if err := client.GoHome(); err != nil {
		return err
	}
	logger.Info().Msg("rover heading home")
	return nil
}
