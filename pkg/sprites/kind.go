// Package sprites 维护精灵描述表
//
// 描述表在启动时由精灵图和描述文本构建一次，之后只读。
// 每种精灵保存其在精灵图中的位置、归一化尺寸以及加载时提取的凸包。
package sprites

import "fmt"

// Kind 精灵种类
type Kind int

const (
	Background Kind = iota
	Player
	PlayerBullet
	EnemyBullet
)

var kindNames = map[Kind]string{
	Background:   "BACKGROUND",
	Player:       "PLAYER",
	PlayerBullet: "PLAYER_BULLET",
	EnemyBullet:  "ENEMY_BULLET",
}

// Kinds 返回全部精灵种类（按声明顺序）
func Kinds() []Kind {
	return []Kind{Background, Player, PlayerBullet, EnemyBullet}
}

// String 返回描述文件中使用的名称
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind 解析描述文件中的精灵名称
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}
