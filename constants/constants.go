package constants

import (
	"os"
	"strconv"
)

// notes per roll
const ChunkSize = 60

// rolls shown in the grid
const RollCount = 20

// smallest pitch range a roll displays, and the padding added around it
const MinPitchSpan = 24
const PitchMargin = 3

// Epsilon keeps a chunk spanning zero time from dividing by zero.
const Epsilon = 1e-9

const DefaultDataURL = "https://pianoroll.ai/random_notes"

const DefaultAddr = ":8080"

const (
	RollHeight        = 150
	FocusedRollHeight = 300
)

const SessionCookie = "pianoroll_session"

func GetOutDir() string {
	path := os.Getenv("OUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetAddr() string {
	return os.Getenv("PIANOROLL_ADDR")
}

func GetDataSource() string {
	return os.Getenv("DATA_SOURCE")
}

func GetDataURL() string {
	return os.Getenv("DATA_URL")
}

func GetMidiPath() string {
	return os.Getenv("MIDI_PATH")
}

func GetDynamoEndpoint() string {
	return os.Getenv("DYNAMO_ENDPOINT")
}

func GetDynamoTable() string {
	return os.Getenv("DYNAMO_TABLE")
}

func GetDynamoKey() string {
	return os.Getenv("DYNAMO_KEY")
}

func GetLogLevel() string {
	return os.Getenv("LOG_LEVEL")
}

// GetChunkSize reports false when CHUNK_SIZE is unset or not a number.
func GetChunkSize() (int, bool) {
	return getInt("CHUNK_SIZE")
}

// GetRollCount reports false when ROLL_COUNT is unset or not a number. A
// set value of 0 means one roll per chunk.
func GetRollCount() (int, bool) {
	return getInt("ROLL_COUNT")
}

func getInt(name string) (int, bool) {
	s, ok := os.LookupEnv(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
