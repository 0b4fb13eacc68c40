package raster

import (
	"testing"

	"github.com/DEV-SHUKLA-GITHUB/BioData-maker/biodata"
)

func TestMergeRasterOptions(t *testing.T) {
	base := biodata.RasterOptions{
		Scale:                2,
		Selector:             "#biodata-template",
		ExternalAssetsPolicy: biodata.ExternalAssetsAllow,
	}

	merged := mergeRasterOptions(base, biodata.RasterOptions{})
	if merged != base {
		t.Fatalf("empty override changed options: %+v", merged)
	}

	merged = mergeRasterOptions(base, biodata.RasterOptions{
		Scale:                1,
		ExternalAssetsPolicy: biodata.ExternalAssetsBlock,
	})
	if merged.Scale != 1 || merged.Selector != "#biodata-template" {
		t.Fatalf("override not applied: %+v", merged)
	}
	if merged.ExternalAssetsPolicy != biodata.ExternalAssetsBlock {
		t.Fatalf("policy not overridden: %+v", merged)
	}
}

func TestEngineDefaults(t *testing.T) {
	e := &ChromiumEngine{}
	defaults := e.defaultOptions()

	if defaults.Scale != biodata.DefaultRasterScale {
		t.Fatalf("scale %v", defaults.Scale)
	}
	if defaults.Selector != biodata.DefaultRasterSelector {
		t.Fatalf("selector %q", defaults.Selector)
	}
	if defaults.ExternalAssetsPolicy != biodata.ExternalAssetsAllow {
		t.Fatalf("policy %q", defaults.ExternalAssetsPolicy)
	}
}

func TestExternalBlockPatterns(t *testing.T) {
	patterns := externalBlockPatterns()
	if len(patterns) != 2 {
		t.Fatalf("expected 2 patterns, got %d", len(patterns))
	}
	if patterns[0].URLPattern != "http://*" || patterns[1].URLPattern != "https://*" {
		t.Fatalf("unexpected patterns: %q %q", patterns[0].URLPattern, patterns[1].URLPattern)
	}
	for _, p := range patterns {
		if !p.Block {
			t.Fatalf("pattern %q does not block", p.URLPattern)
		}
	}
}

func TestAllocatorOptionsFromArgs(t *testing.T) {
	opts := allocatorOptionsFromArgs([]string{
		"--disable-gpu",
		"  ",
		"--force-color-profile=srgb",
		"no-sandbox",
	})
	if len(opts) != 3 {
		t.Fatalf("expected 3 options, got %d", len(opts))
	}
}
