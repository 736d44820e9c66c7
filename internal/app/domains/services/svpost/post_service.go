package svpost

import (
	"context"
	"time"

	"chatorder/internal/nlp"
)

// PostService 贴文分析服务
// 纯规则计算，无外部依赖
type PostService struct{}

// NewPostService 创建贴文分析服务
func NewPostService() *PostService {
	return &PostService{}
}

// AnalyzePost 分析贴文：类型分类，可判定时再抽取表单信息建议
func (s *PostService) AnalyzePost(ctx context.Context, text string) (*nlp.PostAnalysis, *nlp.PostFormInfo, error) {
	analysis, err := nlp.ClassifyPost(text)
	if err != nil {
		return nil, nil, err
	}

	if analysis.Type == nlp.PostTypeUnknown {
		return analysis, nil, nil
	}

	info, err := nlp.ExtractPostInfo(text, time.Now())
	if err != nil {
		return nil, nil, err
	}

	return analysis, info, nil
}
