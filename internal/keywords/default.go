// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package keywords

import "github.com/pdiddy/arxiv-triage/pkg/types"

// Default returns the curated table for extragalactic and cosmology
// preprints (submillimetre galaxies, the interstellar medium, AGN). Pattern
// strings and weights are scoring data and must not be edited casually.
func Default() []types.Keyword {
	return []types.Keyword{
		{Pattern: `\bsmg\b`, Weight: 10},
		{Pattern: `millimet`, Weight: 8},
		{Pattern: `\bism\b`, Weight: 8},
		{Pattern: `herschel`, Weight: 6},
		{Pattern: `\bsed\b`, Weight: 4},
		{Pattern: `spectra`, Weight: 4},
		{Pattern: `pdbi`, Weight: 4},
		{Pattern: `\blens`, Weight: 4},
		{Pattern: `cii`, Weight: 4},
		{Pattern: `emission`, Weight: 4},
		{Pattern: `molecular`, Weight: 4},
		{Pattern: `j=`, Weight: 4},
		{Pattern: `\bdust`, Weight: 4},
		{Pattern: `starburst`, Weight: 4},
		{Pattern: `\bagn\b`, Weight: 4},
		{Pattern: `quasar`, Weight: 4},
		{Pattern: `qso`, Weight: 4},
		{Pattern: `sub`, Weight: 4},
		{Pattern: `formation`, Weight: 4},
		{Pattern: `forming`, Weight: 4},
		{Pattern: `medium`, Weight: 4},
		{Pattern: `luminosit`, Weight: 2},
		{Pattern: `active`, Weight: 2},
		{Pattern: `\bgala`, Weight: 2},
		{Pattern: `gravitational`, Weight: 2},
		{Pattern: `redshift`, Weight: 2},
		{Pattern: `source`, Weight: 2},
		{Pattern: `number`, Weight: 2},
		{Pattern: `star`, Weight: 2},
		// cluster (2) is deliberately left out.
		{Pattern: `simulation`, Weight: 2},
		{Pattern: `distribution`, Weight: 2},
		{Pattern: `energy`, Weight: 2},
		{Pattern: `massive`, Weight: 2},
		{Pattern: `[\bfmn]ir\b`, Weight: 2},
		{Pattern: `infra-?red`, Weight: 2},
		{Pattern: `propert`, Weight: 2},
		{Pattern: `observ`, Weight: 2},
		{Pattern: `\binter`, Weight: 2},
		{Pattern: `relation`, Weight: 2},
		{Pattern: `grow`, Weight: 2},
		{Pattern: `gas`, Weight: 2},
		{Pattern: `high`, Weight: 2},
	}
}
