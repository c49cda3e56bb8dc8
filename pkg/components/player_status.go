package components

// PlayerStatus 玩家的非几何状态
type PlayerStatus struct {
	Lives        int
	Invulnerable float64 // 剩余无敌时间（秒）
	FireCooldown float64 // 距下一次可射击的时间（秒）
	Score        int
	Hits         int // 被击中次数
}

// Alive 玩家是否还有剩余生命
func (s *PlayerStatus) Alive() bool {
	return s.Lives > 0
}

// Hit 处理一次被击中，无敌时间内忽略。返回本次是否生效
func (s *PlayerStatus) Hit(invulnerableTime float64) bool {
	if s.Invulnerable > 0 || !s.Alive() {
		return false
	}
	s.Lives--
	s.Hits++
	s.Invulnerable = invulnerableTime
	return true
}

// Tick 推进计时器
func (s *PlayerStatus) Tick(dt float64) {
	s.Invulnerable = max(0, s.Invulnerable-dt)
	s.FireCooldown = max(0, s.FireCooldown-dt)
}
