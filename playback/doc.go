// SPDX-License-Identifier: EPL-2.0

// Package playback renders decoded audio through the system output device
// using github.com/ebitengine/oto/v3.
//
// The package is a diagnostic harness: Play renders a single file and
// reports a per-track status string, and Compare plays an original and
// its converted counterpart back to back so a sample-rate conversion can
// be judged by ear.  Load failures are reported, never fatal.
//
//	status, err := playback.Play("output.wav", 10*time.Second)
//	fmt.Println(status)
//
// oto permits one audio context per process.  The context is created on
// the first Play with that stream's format; later streams with different
// rates or channel counts are adapted (cubic resampling, mono
// downmix/replication) rather than reopening the device.
package playback
