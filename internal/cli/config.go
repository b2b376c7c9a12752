package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/piwi3910/maxrects/internal/model"
	"github.com/piwi3910/maxrects/internal/project"
)

// Config keys, shared by the config file, MAXRECTS_* env vars and flags.
const (
	keyHeuristic    = "heuristic"
	keyBinWidth     = "bin_width"
	keyBinHeight    = "bin_height"
	keyBinCount     = "bin_count"
	keyBoxCount     = "box_count"
	keyMinBoxSide   = "min_box_side"
	keyMaxBoxSide   = "max_box_side"
	keySeed         = "seed"
	keyRenderBuffer = "render_buffer"
)

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"heuristic":  keyHeuristic,
	"bin-width":  keyBinWidth,
	"bin-height": keyBinHeight,
	"bins":       keyBinCount,
	"boxes":      keyBoxCount,
	"min-side":   keyMinBoxSide,
	"max-side":   keyMaxBoxSide,
	"seed":       keySeed,
	"buffer":     keyRenderBuffer,
}

// readConfig loads defaults, the optional config file and the environment.
func (c *CLI) readConfig() error {
	v := c.config
	d := model.DefaultSettings()
	v.SetDefault(keyHeuristic, string(d.Heuristic))
	v.SetDefault(keyBinWidth, d.BinWidth)
	v.SetDefault(keyBinHeight, d.BinHeight)
	v.SetDefault(keyBinCount, d.BinCount)
	v.SetDefault(keyBoxCount, d.BoxCount)
	v.SetDefault(keyMinBoxSide, d.MinBoxSide)
	v.SetDefault(keyMaxBoxSide, d.MaxBoxSide)
	v.SetDefault(keySeed, d.Seed)
	v.SetDefault(keyRenderBuffer, d.RenderBuffer)

	v.SetEnvPrefix("MAXRECTS")
	v.AutomaticEnv()

	if c.configFile != "" {
		v.SetConfigFile(c.configFile)
	} else {
		v.SetConfigName(appName)
		v.AddConfigPath(".")
		v.AddConfigPath(project.DefaultDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		c.Logger.Debug("no config file found, using defaults")
	} else {
		c.Logger.Debug("loaded config", "file", v.ConfigFileUsed())
	}
	return nil
}

// settings binds the command's flags over the loaded configuration and
// decodes the result.
func (c *CLI) settings(cmd *cobra.Command) (model.Settings, error) {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := c.config.BindPFlag(key, f); err != nil {
				return model.Settings{}, err
			}
		}
	}

	var s model.Settings
	if err := c.config.Unmarshal(&s); err != nil {
		return model.Settings{}, fmt.Errorf("unable to decode config: %w", err)
	}
	return s, nil
}

// addSettingsFlags registers the flags that override generation settings.
// Defaults are left to the config layer, so the flag defaults only show in
// help output.
func addSettingsFlags(cmd *cobra.Command) {
	d := model.DefaultSettings()
	f := cmd.Flags()
	f.IntP("boxes", "b", d.BoxCount, "number of random boxes to generate")
	f.IntP("bins", "n", d.BinCount, "number of bins to generate")
	f.Int("bin-width", d.BinWidth, "width of generated bins")
	f.Int("bin-height", d.BinHeight, "height of generated bins")
	f.Int("min-side", d.MinBoxSide, "smallest generated box side")
	f.Int("max-side", d.MaxBoxSide, "largest generated box side")
	f.Int64("seed", d.Seed, "random seed for generated boxes")
	f.Int("buffer", d.RenderBuffer, "pixels between bins laid out side by side")
}
