package framework

import (
	"context"
	"fmt"
)

// PreProcessor 启动前置检查链
// Manager 启动前依次执行，任一函数返回 error 则立即停止
type PreProcessor struct {
	processFuncs []ProcessorFunc
}

// NewPreProcessor 创建前置检查链
func NewPreProcessor(processFuncs []ProcessorFunc) *PreProcessor {
	return &PreProcessor{
		processFuncs: processFuncs,
	}
}

// Run 执行检查链
func (p *PreProcessor) Run(ctx context.Context) error {
	for i, processFunc := range p.processFuncs {
		if err := processFunc(ctx); err != nil {
			return fmt.Errorf("processor[%d] failed: %w", i, err)
		}
	}
	return nil
}
