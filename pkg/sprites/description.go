package sprites

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformedLine 描述行字段数量或数值格式错误
	ErrMalformedLine = errors.New("malformed sprite description line")
	// ErrUnknownSprite 描述行中的精灵名称未知
	ErrUnknownSprite = errors.New("unknown sprite name")
	// ErrMissingSprite 描述表中缺少必需的精灵
	ErrMissingSprite = errors.New("sprite not described")
	// ErrOutOfBounds 精灵矩形超出精灵图范围
	ErrOutOfBounds = errors.New("sprite rectangle out of image bounds")
)

// Entry 描述文件中的一行
//
// 格式：NAME offsetX offsetY width height frames
//
// 多帧精灵的各帧在精灵图中水平排列，每帧大小为 width×height。
type Entry struct {
	Kind    Kind
	OffsetX int
	OffsetY int
	Width   int
	Height  int
	Frames  int
}

// ParseDescription 解析精灵描述文本
//
// 空行和以 # 开头的注释行会被忽略。任何格式错误都会返回带行号的错误，
// 调用方应将其视为致命的加载错误。
func ParseDescription(text string) ([]Entry, error) {
	var entries []Entry
	seen := make(map[Kind]int)

	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseEntry(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if prev, dup := seen[entry.Kind]; dup {
			return nil, fmt.Errorf("line %d: %w: %s already defined at line %d",
				lineNo, ErrMalformedLine, entry.Kind, prev)
		}
		seen[entry.Kind] = lineNo
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read sprite description: %w", err)
	}

	return entries, nil
}

func parseEntry(line string) (Entry, error) {
	words := strings.Fields(line)
	if len(words) != 6 {
		return Entry{}, fmt.Errorf("%w: expected 6 fields, got %d", ErrMalformedLine, len(words))
	}

	kind, ok := ParseKind(words[0])
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", ErrUnknownSprite, words[0])
	}

	var values [5]int
	for i, word := range words[1:] {
		v, err := strconv.ParseUint(word, 10, 31)
		if err != nil {
			return Entry{}, fmt.Errorf("%w: field %d (%q): %v", ErrMalformedLine, i+2, word, err)
		}
		values[i] = int(v)
	}

	entry := Entry{
		Kind:    kind,
		OffsetX: values[0],
		OffsetY: values[1],
		Width:   values[2],
		Height:  values[3],
		Frames:  values[4],
	}
	if entry.Width == 0 || entry.Height == 0 || entry.Frames == 0 {
		return Entry{}, fmt.Errorf("%w: width, height and frames must be positive", ErrMalformedLine)
	}
	return entry, nil
}
