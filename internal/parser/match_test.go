package parser

import "testing"

func TestNamesMatch_Exact(t *testing.T) {
	t.Parallel()

	if !NamesMatch("黄桃", "黄桃") {
		t.Fatalf("identical names should match")
	}
	if !NamesMatch("1. 黄桃", "黄桃") {
		t.Fatalf("enum prefix should be ignored")
	}
	if !NamesMatch("黄 桃", "黄桃") {
		t.Fatalf("internal whitespace should be ignored")
	}
}

func TestNamesMatch_ContainmentRatioBoundary(t *testing.T) {
	t.Parallel()

	// 短长比恰好 0.5 不算命中，必须严格大于
	if NamesMatch("黄桃", "黄桃罐头") {
		t.Fatalf("ratio 2/4 must not match")
	}
	if !NamesMatch("黄桃产品", "黄桃产品罐头") {
		t.Fatalf("ratio 4/6 should match")
	}
}

func TestNamesMatch_NoContainment(t *testing.T) {
	t.Parallel()

	if NamesMatch("苹果", "香蕉") {
		t.Fatalf("unrelated names must not match")
	}
	if NamesMatch("", "黄桃") {
		t.Fatalf("empty name must not match")
	}
	if NamesMatch("。。", "黄桃") {
		t.Fatalf("name that normalizes to empty must not match")
	}
}
