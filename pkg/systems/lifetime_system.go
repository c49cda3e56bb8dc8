package systems

// LifetimeSystem 管理对象的生命周期
//
// 累计对象存活时间，超过 MaxLifetime 的对象被标记删除。
// MaxLifetime 为 0 的对象不会过期。
type LifetimeSystem struct{}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem() *LifetimeSystem {
	return &LifetimeSystem{}
}

// Update 更新所有对象的生命周期，返回本帧过期的对象数
func (s *LifetimeSystem) Update(w *World, dt float64) int {
	expired := 0
	for _, group := range w.Groups() {
		for i := range group {
			o := &group[i]
			o.Age += dt
			if o.MaxLifetime > 0 && o.Age >= o.MaxLifetime && !o.Marked {
				o.MarkForRemoval()
				expired++
			}
		}
	}
	return expired
}
