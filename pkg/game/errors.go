package game

import "errors"

// ErrNoSceneFactory 未设置场景工厂时请求重新开始
var ErrNoSceneFactory = errors.New("scene factory not set")
