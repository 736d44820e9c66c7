package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"chatorder/internal/nlp"
)

var testcasePath = flag.String("testcase", "./tools/fasttest/testcase/parse.json", "测试用例路径")

// TestCase 测试用例结构
type TestCase struct {
	Name           string   `json:"name"`
	Message        string   `json:"message"`
	Mode           string   `json:"mode"`
	Catalog        []string `json:"catalog,omitempty"`
	DefaultProduct string   `json:"default_product,omitempty"`
	ExpectMatch    bool     `json:"expect_match"`
}

func main() {
	flag.Parse()

	fmt.Println("========================================")
	fmt.Println("  FastTest - 消息解析快速测试工具")
	fmt.Println("========================================")

	testCases, err := loadTestCases(*testcasePath)
	if err != nil {
		fmt.Printf("❌ Failed to load test cases: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Loaded %d test cases from %s\n", len(testCases), *testcasePath)

	fmt.Println("\n========================================")
	fmt.Println("  Running Test Cases")
	fmt.Println("========================================")

	successCount := 0
	failureCount := 0

	for i, tc := range testCases {
		fmt.Printf("\n[Test %d/%d] %s\n", i+1, len(testCases), tc.Name)
		fmt.Println("----------------------------------------")
		fmt.Printf("  Message: %s\n", tc.Message)

		startTime := time.Now()
		err := runTestCase(tc)
		duration := time.Since(startTime)

		if err != nil {
			fmt.Printf("❌ FAILED: %v\n", err)
			fmt.Printf("⏱️  Duration: %v\n", duration)
			failureCount++
		} else {
			fmt.Printf("✅ PASSED\n")
			fmt.Printf("⏱️  Duration: %v\n", duration)
			successCount++
		}
	}

	fmt.Println("\n========================================")
	fmt.Println("  Test Summary")
	fmt.Println("========================================")
	fmt.Printf("Total: %d\n", len(testCases))
	fmt.Printf("Passed: %d ✅\n", successCount)
	fmt.Printf("Failed: %d ❌\n", failureCount)

	if failureCount > 0 {
		os.Exit(1)
	}
}

// loadTestCases 从 JSON 文件加载测试用例
func loadTestCases(path string) ([]TestCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read testcase file: %w", err)
	}

	var testCases []TestCase
	if err := json.Unmarshal(data, &testCases); err != nil {
		return nil, fmt.Errorf("failed to unmarshal testcase: %w", err)
	}

	return testCases, nil
}

// runTestCase 运行单条解析用例
func runTestCase(tc TestCase) error {
	result, err := nlp.ParseOrderMessage(tc.Message, nlp.ParseOptions{
		Mode:           nlp.Mode(tc.Mode),
		Catalog:        tc.Catalog,
		DefaultProduct: tc.DefaultProduct,
	})
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if result == nil {
		if tc.ExpectMatch {
			return fmt.Errorf("expected match but got none")
		}
		fmt.Println("  No match (as expected)")
		return nil
	}

	if !tc.ExpectMatch {
		return fmt.Errorf("expected no match but got %d items", len(result.Items))
	}

	fmt.Printf("  Items: %d\n", len(result.Items))
	for _, item := range result.Items {
		fmt.Printf("    - %s x%d\n", item.ProductName, item.Quantity)
	}
	if result.CustomerName != "" {
		fmt.Printf("  Customer: %s\n", result.CustomerName)
	}
	if result.CustomerPhone != "" {
		fmt.Printf("  Phone: %s\n", result.CustomerPhone)
	}

	return nil
}
