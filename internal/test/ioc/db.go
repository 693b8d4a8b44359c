// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package testioc

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/ecodeclub/webshop/ioc"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gopkg.in/yaml.v3"
)

var (
	db         *egorm.Component
	dbInitOnce sync.Once
)

func InitDB() *egorm.Component {
	dbInitOnce.Do(func() {
		if err := loadConfig(); err != nil {
			panic(err)
		}
		ioc.WaitForDBSetup(econf.GetString("mysql.dsn"))
		db = egorm.Load("mysql").Build()
	})
	return db
}

var configOnce sync.Once

// loadConfig 从测试所在目录往上找到模块根目录，加载 config/local.yaml
func loadConfig() error {
	var err error
	configOnce.Do(func() {
		var root string
		root, err = moduleRoot()
		if err != nil {
			return
		}
		var content []byte
		content, err = os.ReadFile(filepath.Join(root, "config", "local.yaml"))
		if err != nil {
			return
		}
		err = econf.LoadFromReader(bytes.NewReader(content), yaml.Unmarshal)
	})
	return err
}

func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err = os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("找不到 go.mod")
		}
		dir = parent
	}
}
