package game

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// loadYAML 从 gdata 读取一个属性并反序列化到 v
//
// 属性不存在时返回 false 且 v 保持不变。
func loadYAML(m *gdata.Manager, object, property string, v any) (bool, error) {
	if !m.ObjectPropExists(object, property) {
		return false, nil
	}

	data, err := m.LoadObjectProp(object, property)
	if err != nil {
		return false, fmt.Errorf("failed to load %s/%s: %w", object, property, err)
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s/%s: %w", object, property, err)
	}
	return true, nil
}

// saveYAML 序列化 v 并写入 gdata
func saveYAML(m *gdata.Manager, object, property string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s/%s: %w", object, property, err)
	}

	if err := m.SaveObjectProp(object, property, data); err != nil {
		return fmt.Errorf("failed to save %s/%s: %w", object, property, err)
	}
	return nil
}
