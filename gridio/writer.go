package gridio

import "os"

const outputFileMode = 0o644

// WriteFile stores the planner's answer verbatim.
func WriteFile(path, answer string) error {
	return os.WriteFile(path, []byte(answer), outputFileMode)
}
