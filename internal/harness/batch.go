package harness

import (
	"psychrometric-calculator/psychrometrics"
	"psychrometric-calculator/sweep"
	"psychrometric-calculator/units"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/syncromatics/go-kit/v2/log"
)

// batchFile is the TOML layout read by --batch:
//
//	elevation = 1609
//
//	[[condition]]
//	dry_bulb = 77.0
//	relative_humidity = 70.0
//	elevation = 0.0 # optional, overrides the file-level elevation
type batchFile struct {
	Elevation  float64          `toml:"elevation"`
	Conditions []batchCondition `toml:"condition"`
}

type batchCondition struct {
	DryBulb          float64  `toml:"dry_bulb"`
	RelativeHumidity float64  `toml:"relative_humidity"`
	Elevation        *float64 `toml:"elevation"`
}

func readBatch(path string) (*batchFile, error) {
	batch := &batchFile{}
	md, err := toml.DecodeFile(path, batch)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode batch file %s", path)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.Warn("ignoring unknown keys in batch file",
			"path", path,
			"keys", undecoded)
	}

	if len(batch.Conditions) == 0 {
		return nil, errors.Errorf("batch file %s has no [[condition]] tables", path)
	}

	return batch, nil
}

func runBatch(settings *Settings) ([]*sweep.Point, error) {
	batch, err := readBatch(settings.BatchFile)
	if err != nil {
		return nil, err
	}

	points := make([]*sweep.Point, 0, len(batch.Conditions))
	for _, condition := range batch.Conditions {
		elevation := batch.Elevation
		if condition.Elevation != nil {
			elevation = *condition.Elevation
		}

		points = append(points, sweep.Evaluate(psychrometrics.Conditions{
			DryBulb:          dryBulb(settings, condition.DryBulb),
			RelativeHumidity: units.RelativeHumidity(condition.RelativeHumidity),
			Elevation:        units.Meters(elevation),
		}, settings.CorrectForElevation))
	}

	return points, nil
}
