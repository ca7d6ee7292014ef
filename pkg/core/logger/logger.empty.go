//go:build logless
// +build logless

package logger

import "time"

var (
	Log = EmptyLog{}
)

// SetLevel is a no-op in logless builds.
func SetLevel(interface{}) {}

type EmptyLog struct{}

func (l EmptyLog) Debug() EmptyLog { return l }
func (l EmptyLog) Error() EmptyLog { return l }
func (l EmptyLog) Warn() EmptyLog  { return l }
func (l EmptyLog) Info() EmptyLog  { return l }
func (l EmptyLog) Fatal() EmptyLog { return l }

func (l EmptyLog) Msg(string) EmptyLog { return l }
func (l EmptyLog) Err(error) EmptyLog  { return l }

func (l EmptyLog) Int(string, int) EmptyLog            { return l }
func (l EmptyLog) Str(string, string) EmptyLog         { return l }
func (l EmptyLog) Bool(string, bool) EmptyLog          { return l }
func (l EmptyLog) Float32(string, float32) EmptyLog    { return l }
func (l EmptyLog) Float64(string, float64) EmptyLog    { return l }
func (l EmptyLog) Dur(string, time.Duration) EmptyLog  { return l }
func (l EmptyLog) Ints(string, []int) EmptyLog         { return l }
func (l EmptyLog) Strs(string, []string) EmptyLog      { return l }
func (l EmptyLog) Floats32(string, []float32) EmptyLog { return l }
