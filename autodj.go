// Package autodj is the top-level entry point for the Auto-DJ audio
// library: an offline track analyzer (package analysis) and a
// realtime time-stretcher/pitch-shifter (package stretch), bundled
// under one module boundary.
package autodj

import "encoding/json"

// libraryVersion matches the reference crate's CARGO_PKG_VERSION this
// module is a port of.
const libraryVersion = "0.2.0"

// Version reports the module's version string.
func Version() string {
	return "jellyfin-audio-wasm v" + libraryVersion + " - TimeStretch with DJ transitions"
}

// info mirrors the JSON object the reference's info() function
// produces, field for field (spec.md §6).
type info struct {
	Version           string   `json:"version"`
	Features          []string `json:"features"`
	MaxTempo          float64  `json:"max_tempo"`
	MinTempo          float64  `json:"min_tempo"`
	MaxPauseDuration  float64  `json:"max_pause_duration"`
	TransitionCurves  []string `json:"transition_curves"`
}

// Info reports the module's capabilities as a JSON string. Returns an
// empty string if serialization fails, matching the failure mode of
// analysis.Analyzer.AnalyzeFull.
func Info() string {
	data, err := json.Marshal(info{
		Version:          libraryVersion,
		Features:         []string{"time_stretch", "dj_pause_effects", "smooth_transitions"},
		MaxTempo:         2.0,
		MinTempo:         0.0,
		MaxPauseDuration: 10.0,
		TransitionCurves: []string{"ease_in_out"},
	})
	if err != nil {
		return ""
	}
	return string(data)
}
