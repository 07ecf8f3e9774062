package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"bundleview/internal/model"
)

// LoadPaths 读取目录或单文件，返回待分析的文件批次。
//
// 目录模式下收集全部普通文件，显示名为相对路径；没有解析器的文件在分析时计数并跳过。
// 单文件模式下显示名为文件名。
func (s *Service) LoadPaths(paths ...string) ([]model.InputFile, error) {
	if len(paths) == 0 {
		return nil, errors.New("no input path given")
	}

	files := make([]model.InputFile, 0)
	for _, targetPath := range paths {
		loaded, err := s.loadPath(targetPath)
		if err != nil {
			return nil, err
		}
		files = append(files, loaded...)
	}
	return files, nil
}

func (s *Service) loadPath(targetPath string) ([]model.InputFile, error) {
	trimmedPath := strings.TrimSpace(targetPath)
	if trimmedPath == "" {
		return nil, errors.New("input path is empty")
	}

	absoluteTarget, err := filepath.Abs(trimmedPath)
	if err != nil {
		return nil, fmt.Errorf("resolve absolute path: %w", err)
	}

	info, err := os.Stat(absoluteTarget)
	if err != nil {
		return nil, fmt.Errorf("stat path: %w", err)
	}

	if !info.IsDir() {
		file, err := readInputFile(absoluteTarget, filepath.Base(absoluteTarget))
		if err != nil {
			return nil, err
		}
		return []model.InputFile{file}, nil
	}

	return s.loadDirectory(absoluteTarget)
}

// loadDirectory 遍历目录并读取全部普通文件，结果按显示名排序。
func (s *Service) loadDirectory(root string) ([]model.InputFile, error) {
	files := make([]model.InputFile, 0)

	walkErr := filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if !entry.Type().IsRegular() {
			return nil
		}

		relativePath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relativePath = path
		}

		file, err := readInputFile(path, filepath.ToSlash(relativePath))
		if err != nil {
			return err
		}
		files = append(files, file)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("walk directory: %w", walkErr)
	}

	sort.Slice(files, func(i int, j int) bool {
		return files[i].Name < files[j].Name
	})
	return files, nil
}

func readInputFile(path string, displayName string) (model.InputFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return model.InputFile{}, fmt.Errorf("read file %s: %w", displayName, err)
	}
	return model.InputFile{Name: displayName, Content: content}, nil
}
