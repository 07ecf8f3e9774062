// Package session 提供分析会话调度能力。
// 该层负责文件分发、并发解析、结果汇总与规则执行，不负责格式解析细节。
package session

import (
	"context"
	"errors"
	"runtime"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"bundleview/internal/formats"
	"bundleview/internal/insight"
	"bundleview/internal/model"
	"bundleview/internal/stats"
)

// ErrNoFiles 表示调用方传入的文件列表为 nil。
var ErrNoFiles = errors.New("file list is nil")

// DefaultTop 是统计中“最大模块”列表的默认长度。
const DefaultTop = 10

// Service 是分析服务对象。
// Service 本身不保存任何分析状态，每次 Analyze 都使用全新的累加器，可并发调用。
type Service struct {
	registry *formats.Registry
	workers  int
	top      int
	logger   zerolog.Logger
	now      func() time.Time
}

// Option 用于定制 Service。
type Option func(*Service)

// WithWorkers 设置并发解析的 worker 数量，非正数时使用 CPU 核数。
func WithWorkers(workers int) Option {
	return func(s *Service) {
		if workers > 0 {
			s.workers = workers
		}
	}
}

// WithLogger 设置日志输出。
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock 设置 AnalyzedAt 使用的时钟。
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithTop 设置最大模块列表的长度。
func WithTop(top int) Option {
	return func(s *Service) {
		if top >= 0 {
			s.top = top
		}
	}
}

// parseOutcome 表示单个文件的解析产物。
type parseOutcome struct {
	records formats.Records
	err     error
}

// accumulator 是单次分析的可变状态，只在一次 Analyze 调用内存在。
type accumulator struct {
	modules []model.Module
	chunks  []model.Chunk
	errors  []model.FileError
}

// New 创建分析服务。
func New(registry *formats.Registry, options ...Option) *Service {
	s := &Service{
		registry: registry,
		workers:  runtime.NumCPU(),
		top:      DefaultTop,
		logger:   zerolog.Nop(),
		now:      time.Now,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Analyze 分析一批文件并返回不可变的结果快照。
//
// 执行顺序：
// - 并发解析全部文件，单文件失败只记录不中断
// - 全部解析完成后执行规则引擎
// - 计算聚合值并组装结果
//
// 整批作为一个单元取消，ctx 取消时不返回部分结果。
func (s *Service) Analyze(ctx context.Context, files []model.InputFile) (model.AnalysisResult, error) {
	if files == nil {
		return model.AnalysisResult{}, ErrNoFiles
	}

	outcomes, err := s.parseAll(ctx, files)
	if err != nil {
		return model.AnalysisResult{}, err
	}

	acc := accumulator{
		modules: make([]model.Module, 0),
		chunks:  make([]model.Chunk, 0),
		errors:  make([]model.FileError, 0),
	}
	for index, outcome := range outcomes {
		s.collect(&acc, files[index], outcome)
	}
	uniquifyModuleIDs(acc.modules)
	uniquifyChunkIDs(acc.chunks)

	totalSize, totalCompressed := stats.Totals(acc.modules)
	insights := insight.Generate(insight.Input{
		Modules:   acc.modules,
		Chunks:    acc.chunks,
		TotalSize: totalSize,
	})

	result := model.AnalysisResult{
		TotalSize:           totalSize,
		TotalCompressedSize: totalCompressed,
		Modules:             acc.modules,
		Chunks:              acc.chunks,
		Insights:            insights,
		Metadata: model.Metadata{
			AnalyzedAt:     s.now().UTC(),
			FileCount:      len(files),
			FileExtensions: fileExtensions(files),
		},
		Errors: acc.errors,
		Stats:  stats.Summarize(acc.modules, acc.chunks, totalSize, totalCompressed, s.top),
	}

	s.logger.Debug().
		Int("files", len(files)).
		Int("modules", len(result.Modules)).
		Int("chunks", len(result.Chunks)).
		Int("insights", len(result.Insights)).
		Msg("analysis finished")

	return result, nil
}

// parseAll 在有界 worker 池中解析全部文件，结果按输入顺序存放。
func (s *Service) parseAll(ctx context.Context, files []model.InputFile) ([]parseOutcome, error) {
	outcomes := make([]parseOutcome, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.workers)

	for index := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			records, err := s.registry.Parse(files[index])
			outcomes[index] = parseOutcome{records: records, err: err}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return outcomes, nil
}

// collect 把单文件解析产物并入累加器。
func (s *Service) collect(acc *accumulator, file model.InputFile, outcome parseOutcome) {
	switch {
	case errors.Is(outcome.err, formats.ErrSkipped):
		s.logger.Debug().Str("file", file.Name).Msg("file skipped")
		return
	case outcome.err != nil:
		s.logger.Warn().Str("file", file.Name).Err(outcome.err).Msg("failed to process file")
		acc.errors = append(acc.errors, model.FileError{Name: file.Name, Error: outcome.err.Error()})
		return
	}

	for _, warning := range outcome.records.Warnings {
		s.logger.Warn().Str("file", file.Name).Err(warning).Msg("entry defaulted")
		acc.errors = append(acc.errors, model.FileError{Name: file.Name, Error: warning.Error()})
	}

	s.logger.Debug().
		Str("file", file.Name).
		Int("modules", len(outcome.records.Modules)).
		Int("chunks", len(outcome.records.Chunks)).
		Int("warnings", len(outcome.records.Warnings)).
		Msg("file processed")

	acc.modules = append(acc.modules, outcome.records.Modules...)
	acc.chunks = append(acc.chunks, outcome.records.Chunks...)
}

// fileExtensions 返回每个输入文件的小写后缀，缺失时为 unknown。
func fileExtensions(files []model.InputFile) []string {
	result := make([]string, 0, len(files))
	for _, file := range files {
		ext := formats.Extension(file.Name)
		if ext == "" {
			ext = "unknown"
		}
		result = append(result, ext)
	}
	return result
}

// uniquifyModuleIDs 为跨文件重复的模块 ID 追加 #2、#3 等后缀，先出现者保留原 ID。
func uniquifyModuleIDs(modules []model.Module) {
	taken := make(map[string]struct{}, len(modules))
	for i := range modules {
		modules[i].ID = claimID(taken, modules[i].ID)
	}
}

// uniquifyChunkIDs 与 uniquifyModuleIDs 规则相同。
func uniquifyChunkIDs(chunks []model.Chunk) {
	taken := make(map[string]struct{}, len(chunks))
	for i := range chunks {
		chunks[i].ID = claimID(taken, chunks[i].ID)
	}
}

func claimID(taken map[string]struct{}, id string) string {
	candidate := id
	for n := 2; ; n++ {
		if _, ok := taken[candidate]; !ok {
			break
		}
		candidate = id + "#" + strconv.Itoa(n)
	}
	taken[candidate] = struct{}{}
	return candidate
}
