// Package stepseq is the data model of a step sequencer pattern: a fixed
// number of steps, each optionally holding a Row with a channel, a Note, a
// velocity and effects. Notes map to MIDI style numbers as
// pitch class + 12*octave.
package stepseq
