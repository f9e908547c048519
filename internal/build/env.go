package build

import "os"

// Environment is the source revision stamped into binaries
type Environment struct {
	Commit string
	Date   string
}

// Env reads the revision from GIT_COMMIT / GIT_DATE, falling back to the local checkout
func Env() *Environment {
	env := &Environment{
		Commit: os.Getenv("GIT_COMMIT"),
		Date:   os.Getenv("GIT_DATE"),
	}
	if env.Commit == "" {
		env.Commit = RunGit("rev-parse", "HEAD")
	}
	if env.Date == "" && env.Commit != "" {
		env.Date = RunGit("show", "-s", "--format=%cd", "--date=format:%Y%m%d", env.Commit)
	}
	return env
}
