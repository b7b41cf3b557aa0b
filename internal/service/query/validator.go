package query

import (
	"fmt"
	"regexp"
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v6"
)

// 禁止出现的写操作关键词
// 纯子串匹配，不做语法分析，列名含 "update" 之类会误杀，作为兜底防线可以接受
var forbiddenKeywords = []string{"DROP", "DELETE", "UPDATE", "INSERT", "ALTER", "TRUNCATE", "CREATE"}

// Validator SQL 校验器
// 先做确定性的字符串检查，Strict 开启时再用 PostgreSQL 官方解析器做结构校验
type Validator struct {
	// Strict 启用 pg_query 结构校验（单语句、纯 SELECT）
	Strict bool
}

// NewValidator 创建 SQL 校验器
func NewValidator(strict bool) *Validator {
	return &Validator{Strict: strict}
}

// Validate 校验候选 SQL，返回是否通过与拒绝原因
// 纯函数，无副作用
func (v *Validator) Validate(sqlQuery string) (bool, string) {
	queryUpper := strings.ToUpper(sqlQuery)

	for _, keyword := range forbiddenKeywords {
		if strings.Contains(queryUpper, keyword) {
			return false, fmt.Sprintf("Query contains forbidden operation: %s", keyword)
		}
	}

	if !strings.HasPrefix(strings.TrimSpace(queryUpper), "SELECT") {
		return false, "Query must be a SELECT statement"
	}

	if strings.Count(sqlQuery, "*") > 2 {
		return false, "Query contains too many wildcard (*) characters"
	}

	if !strings.Contains(queryUpper, "FROM") {
		return false, "Query must specify a FROM clause"
	}

	if v.Strict {
		if err := structuralCheck(sqlQuery); err != nil {
			return false, err.Error()
		}
	}

	return true, ""
}

// structuralCheck 使用 PostgreSQL 官方解析器校验语句结构
func structuralCheck(sqlQuery string) error {
	result, err := pg_query.Parse(sqlQuery)
	if err != nil {
		return fmt.Errorf("SQL parse error: %v", err)
	}

	if len(result.Stmts) == 0 {
		return fmt.Errorf("empty query")
	}
	if len(result.Stmts) > 1 {
		return fmt.Errorf("multiple statements are not allowed")
	}

	if result.Stmts[0].Stmt.GetSelectStmt() == nil {
		return fmt.Errorf("only SELECT queries are allowed")
	}

	return nil
}

var unsafeInputChars = regexp.MustCompile(`[;'"\\]`)

// SanitizeInput 清理用户输入，移除可用于注入的字符
func SanitizeInput(input string) string {
	return strings.TrimSpace(unsafeInputChars.ReplaceAllString(input, ""))
}
