package moontable

// Config tunes the non-fixed parts of the pipeline.
type Config struct {
	Bins BinConfig `json:"bins"`
}

func DefaultConfig() Config {
	return Config{Bins: DefaultBins()}
}

// displayOrder puts identity fields first, then descriptive fields,
// then orbital fields.
var displayOrder = []string{
	ColNumericMoonName,
	ColMoonName,
	ColDiscoveryYear,
	ColDiscoveredBy,
	ColMeanRadius,
	ColNotes,
	ColParentPlanet,
	ColMeanDistance,
	ColOrbitalDays,
}

// OutputColumns is the final column set, keyed by
// (Numeric moon name, Moon name).
var OutputColumns = []string{
	ColDiscoveryYear,
	ColYearBin,
	ColDiscoveredBy,
	ColMeanRadius,
	ColNotes,
	ColParentPlanet,
	ColDistanceRank,
	ColOrbitalYears,
}

// Run applies the full cleaning pipeline to a raw scraped table:
// rename, prune, reorder, key, year cleaning, year binning, distance
// ranking, period conversion and the final projection. Each step is a
// pure function over the table, so rerunning on the same input always
// produces an identical output.
func Run(raw Table, cfg Config) (Table, []Rejected, error) {
	t, err := raw.Rename(map[string]string{
		ColParent:         ColParentPlanet,
		ColName:           ColMoonName,
		ColNumeral:        ColNumericMoonName,
		ColSemiMajorAxis:  ColMeanDistance,
		ColSiderealPeriod: ColOrbitalDays,
	})
	if err != nil {
		return Table{}, nil, err
	}

	t, err = t.Drop(ColImage, ColRefs)
	if err != nil {
		return Table{}, nil, err
	}

	t, err = t.Select(displayOrder...)
	if err != nil {
		return Table{}, nil, err
	}

	t, err = t.SetKey(ColNumericMoonName, ColMoonName)
	if err != nil {
		return Table{}, nil, err
	}

	t, rejected, err := CleanYears(t, ColDiscoveryYear)
	if err != nil {
		return Table{}, nil, err
	}

	t, err = BinYears(t, ColDiscoveryYear, ColYearBin, cfg.Bins)
	if err != nil {
		return Table{}, nil, err
	}

	t, err = RankDistance(t, ColMeanDistance, ColDistanceRank)
	if err != nil {
		return Table{}, nil, err
	}

	t, err = ConvertPeriod(t, ColOrbitalDays, ColOrbitalYears)
	if err != nil {
		return Table{}, nil, err
	}

	t, err = t.Select(OutputColumns...)
	if err != nil {
		return Table{}, nil, err
	}

	return t, rejected, nil
}
