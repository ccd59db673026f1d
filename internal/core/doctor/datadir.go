package doctor

import (
	"context"
	"fmt"
	"os"
)

// DataDirCheck verifies the data directory and trials root exist and are
// readable.
type DataDirCheck struct {
	dataDir   string
	trialsDir string
}

// NewDataDirCheck creates a new data directory check.
func NewDataDirCheck(dataDir, trialsDir string) *DataDirCheck {
	return &DataDirCheck{dataDir: dataDir, trialsDir: trialsDir}
}

func (c *DataDirCheck) Name() string {
	return "Data Directory"
}

func (c *DataDirCheck) Run(_ context.Context) Result {
	result := Result{Name: c.Name()}
	result.Items = append(result.Items, checkDir("data dir", c.dataDir, StatusFail))

	// A missing trials root is not fatal; the server serves an empty trial
	// list in that case.
	result.Items = append(result.Items, checkDir("trials dir", c.trialsDir, StatusWarn))
	return result
}

func checkDir(label, dir string, missing Status) CheckItem {
	info, err := os.Stat(dir)
	switch {
	case os.IsNotExist(err):
		return CheckItem{Label: label, Status: missing, Detail: fmt.Sprintf("%s does not exist", dir)}
	case err != nil:
		return CheckItem{Label: label, Status: StatusFail, Detail: fmt.Sprintf("inaccessible: %v", err)}
	case !info.IsDir():
		return CheckItem{Label: label, Status: StatusFail, Detail: fmt.Sprintf("%s is not a directory", dir)}
	default:
		return CheckItem{Label: label, Status: StatusPass, Detail: dir}
	}
}
