package service

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/haierkeys/link-store-service/internal/domain"
	"github.com/haierkeys/link-store-service/internal/dto"
	"github.com/haierkeys/link-store-service/pkg/code"
	"github.com/haierkeys/link-store-service/pkg/convert"
	"github.com/haierkeys/link-store-service/pkg/logger"
	"github.com/haierkeys/link-store-service/pkg/timex"
	pkgvalidator "github.com/haierkeys/link-store-service/pkg/validator"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// LinkService 定义链接业务服务接口
// 负责加载初始列表、校验并追加链接、生成导出快照
type LinkService interface {
	// Load 从资源来源加载并整体替换列表；失败时列表置空并返回原因
	Load(ctx context.Context) (int, error)

	// Check 获取并解析资源但不修改列表
	Check(ctx context.Context) (*dto.SourceCheckDTO, error)

	// Raw 返回资源原始内容
	Raw(ctx context.Context) ([]byte, error)

	// List 返回当前列表
	List(ctx context.Context) ([]dto.LinkDTO, error)

	// Add 校验并追加链接，成功后重新生成导出快照
	Add(ctx context.Context, params *dto.LinkAddRequest) (*dto.LinkAddResponse, error)

	// LatestExport 返回最新导出快照信息
	LatestExport(ctx context.Context) (*dto.ExportDTO, error)

	// GetExport 根据 ID 获取导出快照，被替换的快照返回 ErrorExportNotFound
	GetExport(ctx context.Context, id string) (*domain.Snapshot, error)

	// LoadState 返回最近一次加载的状态
	LoadState() dto.LoadStateDTO

	// ExportURL 返回快照下载地址
	ExportURL(id string) string
}

// linkService 实现 LinkService 接口
type linkService struct {
	repo      domain.LinkRepository
	snapshots domain.SnapshotRepository
	source    domain.LinkSource
	validate  *validator.Validate
	logger    *zap.Logger
	config    LinkServiceConfig
	sf        *singleflight.Group

	// 追加与快照生成在同一把锁内完成
	addMu sync.Mutex

	stateMu sync.RWMutex
	state   dto.LoadStateDTO
}

// NewLinkService 创建 LinkService 实例
func NewLinkService(repo domain.LinkRepository, snapshots domain.SnapshotRepository, source domain.LinkSource, logger *zap.Logger, cfg *ServiceConfig) LinkService {
	linkCfg := DefaultLinkServiceConfig()
	if cfg != nil {
		if cfg.Links.FetchTimeout > 0 {
			linkCfg.FetchTimeout = cfg.Links.FetchTimeout
		}
		if cfg.Links.ExportPrefix != "" {
			linkCfg.ExportPrefix = cfg.Links.ExportPrefix
		}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &linkService{
		repo:      repo,
		snapshots: snapshots,
		source:    source,
		validate:  pkgvalidator.New(),
		logger:    logger,
		config:    linkCfg,
		sf:        &singleflight.Group{},
	}
	if source != nil {
		s.state.Source = source.Describe()
	}
	return s
}

// Load 加载初始列表
// 任何失败都会把列表置空，错误只记录日志和指标
func (s *linkService) Load(ctx context.Context) (int, error) {
	links, _, err := s.fetchLinks(ctx)
	if err != nil {
		_ = s.repo.Replace(ctx, nil)
		linksCurrent.Set(0)
		loadTotal.WithLabelValues("failure").Inc()
		loadFailures.WithLabelValues(failureReason(err)).Inc()
		s.setState(false, 0, err)

		s.logger.Warn("links.json load failed, starting with an empty list",
			zap.String(logger.FieldSource, s.describeSource()),
			zap.Error(err))
		return 0, err
	}

	if err := s.repo.Replace(ctx, links); err != nil {
		return 0, err
	}
	linksCurrent.Set(float64(len(links)))
	loadTotal.WithLabelValues("success").Inc()
	s.setState(true, len(links), nil)

	s.logger.Info("links.json loaded",
		zap.String(logger.FieldSource, s.describeSource()),
		zap.Int(logger.FieldCount, len(links)))
	return len(links), nil
}

// Check 资源检查，用于运维诊断
func (s *linkService) Check(ctx context.Context) (*dto.SourceCheckDTO, error) {
	links, size, err := s.fetchLinks(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SourceCheckDTO{
		Source: s.describeSource(),
		Count:  len(links),
		Size:   size,
	}, nil
}

// Raw 原样返回资源内容
func (s *linkService) Raw(ctx context.Context) ([]byte, error) {
	return s.fetch(ctx)
}

func (s *linkService) List(ctx context.Context) ([]dto.LinkDTO, error) {
	links, err := s.repo.List(ctx)
	if err != nil {
		return nil, code.ErrorServerInternal.Clone().WithDetails(err.Error())
	}

	out := make([]dto.LinkDTO, 0, len(links))
	if err := convert.StructAssign(&links, &out); err != nil {
		return nil, code.ErrorServerInternal.Clone().WithDetails(err.Error())
	}
	return out, nil
}

// Add 校验并追加
// 先检查两个字段是否为空，再检查 URL 前缀
func (s *linkService) Add(ctx context.Context, params *dto.LinkAddRequest) (*dto.LinkAddResponse, error) {
	if params == nil {
		params = &dto.LinkAddRequest{}
	}

	if err := s.validateAdd(params); err != nil {
		return nil, err
	}

	link := domain.Link{Title: params.Title, URL: params.URL}

	s.addMu.Lock()
	defer s.addMu.Unlock()

	all, err := s.repo.Append(ctx, link)
	if err != nil {
		return nil, code.ErrorServerInternal.Clone().WithDetails(err.Error())
	}

	snap, err := s.regenerate(ctx, all)
	if err != nil {
		return nil, code.ErrorServerInternal.Clone().WithDetails(err.Error())
	}

	linksAdded.Inc()
	linksCurrent.Set(float64(len(all)))

	s.logger.Info("link added",
		zap.Int(logger.FieldCount, len(all)),
		zap.String(logger.FieldSnapshotID, snap.ID))

	return &dto.LinkAddResponse{
		Link:        dto.LinkDTO{Title: link.Title, URL: link.URL},
		Count:       len(all),
		DownloadURL: s.ExportURL(snap.ID),
	}, nil
}

func (s *linkService) validateAdd(params *dto.LinkAddRequest) error {
	err := s.validate.Struct(params)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		linksRejected.WithLabelValues(reasonInvalid).Inc()
		return code.ErrorInvalidParams.Clone().WithDetails(err.Error())
	}

	hasPrefixErr := false
	for _, fe := range verrs {
		switch fe.Tag() {
		case pkgvalidator.TagNotBlank:
			linksRejected.WithLabelValues(reasonRequired).Inc()
			return code.ErrorLinkFieldsRequired
		case pkgvalidator.TagHTTPPrefix:
			hasPrefixErr = true
		}
	}
	if hasPrefixErr {
		linksRejected.WithLabelValues(reasonURLPrefix).Inc()
		return code.ErrorLinkURLInvalid
	}

	linksRejected.WithLabelValues(reasonInvalid).Inc()
	return code.ErrorInvalidParams.Clone().WithDetails(err.Error())
}

// regenerate 生成新快照并替换旧快照
func (s *linkService) regenerate(ctx context.Context, links []domain.Link) (*domain.Snapshot, error) {
	content, err := EncodeLinks(links)
	if err != nil {
		return nil, err
	}

	snap := &domain.Snapshot{
		ID:        uuid.New().String(),
		Content:   content,
		Count:     len(links),
		CreatedAt: time.Now(),
	}
	if err := s.snapshots.Put(ctx, snap); err != nil {
		return nil, err
	}
	exportBytes.Set(float64(len(content)))
	return snap, nil
}

func (s *linkService) LatestExport(ctx context.Context) (*dto.ExportDTO, error) {
	snap, err := s.snapshots.Latest(ctx)
	if err != nil {
		return nil, code.ErrorServerInternal.Clone().WithDetails(err.Error())
	}
	if snap == nil {
		return nil, code.ErrorExportNotReady
	}
	return &dto.ExportDTO{
		ID:          snap.ID,
		Count:       snap.Count,
		Size:        snap.Size(),
		CreatedAt:   timex.Time(snap.CreatedAt),
		DownloadURL: s.ExportURL(snap.ID),
	}, nil
}

func (s *linkService) GetExport(ctx context.Context, id string) (*domain.Snapshot, error) {
	snap, err := s.snapshots.Get(ctx, id)
	if err != nil {
		return nil, code.ErrorServerInternal.Clone().WithDetails(err.Error())
	}
	if snap == nil {
		return nil, code.ErrorExportNotFound
	}
	return snap, nil
}

func (s *linkService) ExportURL(id string) string {
	return s.config.ExportPrefix + "/" + id + "/" + ExportFileName
}

func (s *linkService) LoadState() dto.LoadStateDTO {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.state
}

func (s *linkService) setState(loaded bool, count int, err error) {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	s.state = dto.LoadStateDTO{
		Source:   s.describeSource(),
		Loaded:   loaded,
		Count:    count,
		LoadedAt: timex.Now(),
	}
	if err != nil {
		s.state.Error = err.Error()
	}
}

func (s *linkService) describeSource() string {
	if s.source == nil {
		return ""
	}
	return s.source.Describe()
}

// fetch 获取原始内容，并发请求合并为一次
func (s *linkService) fetch(ctx context.Context) ([]byte, error) {
	if s.source == nil {
		return nil, code.ErrorSourceUnavailable.Clone().WithDetails("no source configured")
	}

	result, err, _ := s.sf.Do("fetch", func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(ctx, s.config.FetchTimeout)
		defer cancel()
		return s.source.Fetch(fetchCtx)
	})
	if err != nil {
		return nil, code.ErrorSourceUnavailable.Clone().WithDetails(err.Error())
	}
	return result.([]byte), nil
}

// fetchLinks 获取并解析资源，必须是链接对象组成的 JSON 数组
func (s *linkService) fetchLinks(ctx context.Context) ([]domain.Link, int, error) {
	content, err := s.fetch(ctx)
	if err != nil {
		return nil, 0, err
	}
	links, err := DecodeLinks(content)
	if err != nil {
		return nil, len(content), err
	}
	return links, len(content), nil
}

var utf8BOM = []byte("\xEF\xBB\xBF")

// DecodeLinks 解析 links.json 内容，忽略开头的 UTF-8 BOM
func DecodeLinks(content []byte) ([]domain.Link, error) {
	trimmed := bytes.TrimSpace(bytes.TrimPrefix(content, utf8BOM))
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, code.ErrorSourceMalformed.Clone().WithDetails("top-level value is not an array")
	}

	links := make([]domain.Link, 0)
	if err := sonic.Unmarshal(trimmed, &links); err != nil {
		return nil, code.ErrorSourceMalformed.Clone().WithDetails(err.Error())
	}
	return links, nil
}

func failureReason(err error) string {
	if errors.Is(err, code.ErrorSourceMalformed) {
		return reasonMalformed
	}
	return reasonUnavailable
}
