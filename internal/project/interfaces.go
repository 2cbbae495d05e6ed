package project

//go:generate mockgen -source=interfaces.go -destination=../mock/environment_mock.go -package=mock

// Environment is a read-only source of environment variables.
//
// [OSEnvironment] reads the process environment; [MapEnvironment] serves a
// fixed set of values and is what tests use.
type Environment interface {
	// LookupEnv returns the value of key and whether it is present, with
	// the same contract as os.LookupEnv.
	LookupEnv(key string) (string, bool)
}
