package global

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const (
	mb = 1000000
	kb = 1000

	defaultMaxLogSize = 2.5 * mb
	defaultMaxLogs    = 2
)

// rollingFileWriter appends to FileName.log in FileDirectory. Once that file grows past MaxSize
// it is renamed to FileName-1.log (older logs shift up by one) and a fresh file is started.
// At most MaxLogs files, including the current one, are kept.
type rollingFileWriter struct {
	FileDirectory string
	FileName      string
	MaxSize       int64
	MaxLogs       int
}

func NewRollingFileWriter(fileDir string, fileName string) (rollingFileWriter, error) {
	absFileDir, err := filepath.Abs(fileDir)
	if err != nil {
		return rollingFileWriter{}, err
	}

	if err := os.MkdirAll(absFileDir, 0750); err != nil {
		return rollingFileWriter{}, err
	}

	return rollingFileWriter{
		FileDirectory: absFileDir,
		FileName:      fileName,
		MaxSize:       defaultMaxLogSize,
		MaxLogs:       defaultMaxLogs,
	}, nil
}

func (w rollingFileWriter) getFullFilePath() string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s.log", w.FileName))
}

func (w rollingFileWriter) indexedLog(fileName string, index int64) string {
	return filepath.Join(w.FileDirectory, fmt.Sprintf("%s-%d.log", fileName, index))
}

// getLogs returns the full paths of the logs in FileDirectory matching pattern
func (w rollingFileWriter) getLogs(pattern string) ([]string, error) {
	logMatches, err := fs.Glob(os.DirFS(w.FileDirectory), pattern)
	if err != nil {
		return nil, err
	}

	return lo.Map(logMatches, func(log string, _ int) string {
		return filepath.Join(w.FileDirectory, log)
	}), nil
}

func (w rollingFileWriter) Write(b []byte) (n int, err error) {
	mainLogFile, err := os.OpenFile(w.getFullFilePath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}

	stats, err := mainLogFile.Stat()
	if err != nil {
		mainLogFile.Close()
		return 0, err
	}

	if stats.Size() < w.MaxSize {
		defer mainLogFile.Close()
		return mainLogFile.Write(b)
	}

	// close since the main file is about to be renamed
	mainLogFile.Close()
	if err := w.rotate(); err != nil {
		return 0, err
	}

	mainLogFile, err = os.OpenFile(w.getFullFilePath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return 0, err
	}
	defer mainLogFile.Close()

	return mainLogFile.Write(b)
}

// rotate shifts every archived log up an index, archives the main log as index 1
// and deletes whatever no longer fits in MaxLogs
func (w rollingFileWriter) rotate() error {
	logMatches, err := w.getLogs(w.FileName + "-*.log")
	if err != nil {
		return err
	}

	for _, log := range logMatches {
		index := getLogIndex(w.FileName, log)

		// get rid of messed up log files
		if index <= 0 {
			if err := os.Remove(log); err != nil {
				return err
			}
			continue
		}

		// the mod- prefix keeps name-1 -> name-2 from overwriting the old name-2 before it moved
		if err := os.Rename(log, w.indexedLog("mod-"+w.FileName, index+1)); err != nil {
			return err
		}
	}

	modLogMatches, err := w.getLogs(fmt.Sprintf("mod-%s-*.log", w.FileName))
	if err != nil {
		return err
	}

	for _, log := range modLogMatches {
		newFileName, _ := strings.CutPrefix(filepath.Base(log), "mod-")
		newFullPath := filepath.Join(filepath.Dir(log), newFileName)

		// the current log counts towards MaxLogs
		if getLogIndex(w.FileName, newFullPath) >= int64(w.MaxLogs) {
			if err := os.Remove(log); err != nil {
				return err
			}
			continue
		}

		if err := os.Rename(log, newFullPath); err != nil {
			return err
		}
	}

	if w.MaxLogs <= 1 {
		return os.Remove(w.getFullFilePath())
	}

	return os.Rename(w.getFullFilePath(), w.indexedLog(w.FileName, 1))
}

// getLogIndex gets N out of baseFileName-N.log, or -1 if the name doesn't have a valid index
func getLogIndex(baseFileName string, filePath string) int64 {
	fileName, _ := strings.CutSuffix(filepath.Base(filePath), ".log")
	indexStr, _ := strings.CutPrefix(fileName, baseFileName+"-")

	index, err := strconv.ParseInt(indexStr, 10, 32)
	if err != nil {
		return -1
	}

	return index
}
