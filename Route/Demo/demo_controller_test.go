package Demo

import (
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"cloudysky/Config"

	"github.com/gin-gonic/gin"
)

func setupDemoRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/dummypage", Dummypage)
	r.GET("/time", CurrentTime)
	r.GET("/sum", SumNumbers)
	return r
}

// TestDummypage 固定文本
func TestDummypage(t *testing.T) {
	r := setupDemoRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/dummypage", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("状态码不匹配: 得到 %v, 期望 200", w.Code)
	}
	if w.Body.String() != "No content here, sorry!" {
		t.Errorf("响应内容不匹配: %q", w.Body.String())
	}
}

// TestCurrentTime 返回 HH:MM 格式
func TestCurrentTime(t *testing.T) {
	Config.Cfg.TimeOffsetHours = -5
	r := setupDemoRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/time", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("状态码不匹配: 得到 %v, 期望 200", w.Code)
	}
	if !regexp.MustCompile(`^\d{2}:\d{2}$`).MatchString(w.Body.String()) {
		t.Errorf("时间格式不匹配: %q", w.Body.String())
	}
}

// TestSumNumbers 加法接口：缺省为0，无法解析返回400
func TestSumNumbers(t *testing.T) {
	r := setupDemoRouter()

	tests := []struct {
		name     string
		query    string
		wantCode int
		wantBody string
	}{
		{
			name:     "两个整数",
			query:    "?n1=1&n2=2",
			wantCode: http.StatusOK,
			wantBody: "3",
		},
		{
			name:     "小数相加",
			query:    "?n1=1.5&n2=2.25",
			wantCode: http.StatusOK,
			wantBody: "3.75",
		},
		{
			name:     "缺省参数按0处理",
			query:    "?n1=5",
			wantCode: http.StatusOK,
			wantBody: "5",
		},
		{
			name:     "无法解析返回400",
			query:    "?n1=abc&n2=2",
			wantCode: http.StatusBadRequest,
			wantBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/sum"+tt.query, nil)
			r.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("状态码不匹配: 得到 %v, 期望 %v", w.Code, tt.wantCode)
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Errorf("响应内容不匹配: 得到 %q, 期望 %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}
