package Demo

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"cloudysky/Config"

	"github.com/gin-gonic/gin"
)

// Dummypage 固定文本占位页
func Dummypage(c *gin.Context) {
	c.String(http.StatusOK, "No content here, sorry!")
}

// CurrentTime 当前时间加上配置的偏移（默认-5小时），格式 HH:MM
func CurrentTime(c *gin.Context) {
	offset := time.Duration(Config.Cfg.TimeOffsetHours) * time.Hour
	now := time.Now().UTC().Add(offset)
	c.String(http.StatusOK, now.Format("15:04"))
}

// SumNumbers 两数相加。参数无法解析时返回400，而不是吞掉错误返回200
func SumNumbers(c *gin.Context) {
	n1, err := strconv.ParseFloat(c.DefaultQuery("n1", "0"), 64)
	if err != nil {
		c.String(http.StatusBadRequest, "Error: 无法解析 n1")
		return
	}
	n2, err := strconv.ParseFloat(c.DefaultQuery("n2", "0"), 64)
	if err != nil {
		c.String(http.StatusBadRequest, "Error: 无法解析 n2")
		return
	}
	c.String(http.StatusOK, fmt.Sprintf("%g", n1+n2))
}
