package database

import (
	"log"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var (
	DB  *gorm.DB
	err error
)

func InitDB(path string) {
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true, // 唯一索引冲突翻译为 gorm.ErrDuplicatedKey
	})
	if err != nil {
		log.Fatal("数据库连接失败:", err)
	}
	// 自动迁移表结构
	err = DB.AutoMigrate(
		&User{},
		&BlockReason{},
		&Post{},
		&Comment{},
		&Media{},
		&Like{},
	)
	if err != nil {
		log.Fatal("数据库迁移失败:", err)
	}

	log.Println("数据库连接成功")
}
