package config

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// tuningDebounce 同一文件两次事件之间的最小间隔
// 编辑器保存时常常连续触发多次写事件
const tuningDebounce = 100 * time.Millisecond

// TuningWatcher 监听调参文件的变化并在后台重新解析
//
// 只有解析和校验通过的配置才会发送到 Configs；失败只记录日志。
// 游戏循环在 Update 中非阻塞地读取 Configs，后台 goroutine 不接触任何游戏状态。
type TuningWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Configs chan *TuningConfig
	closeCh chan struct{}
	once    sync.Once
}

// NewTuningWatcher 创建监听器
// 监听文件所在的目录而不是文件本身，这样编辑器"写临时文件再重命名"的保存方式也能被捕获
func NewTuningWatcher(path string) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}

	if err := w.Add(filepath.Dir(absPath)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		watcher: w,
		path:    absPath,
		Configs: make(chan *TuningConfig, 1),
		closeCh: make(chan struct{}),
	}
	go tw.run()

	log.Printf("[TuningWatcher] Watching %s", absPath)
	return tw, nil
}

// Close 停止监听
func (tw *TuningWatcher) Close() error {
	var err error
	tw.once.Do(func() {
		close(tw.closeCh)
		err = tw.watcher.Close()
	})
	return err
}

// Poll 非阻塞地取出最近一次成功重载的配置
func (tw *TuningWatcher) Poll() (*TuningConfig, bool) {
	select {
	case cfg := <-tw.Configs:
		return cfg, true
	default:
		return nil, false
	}
}

func (tw *TuningWatcher) run() {
	var last time.Time
	for {
		select {
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !tw.matches(event.Name) {
				continue
			}
			now := time.Now()
			if now.Sub(last) < tuningDebounce {
				continue
			}
			last = now
			tw.reload()
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[TuningWatcher] Warning: watcher error: %v", err)
		case <-tw.closeCh:
			return
		}
	}
}

func (tw *TuningWatcher) matches(name string) bool {
	abs, err := filepath.Abs(name)
	if err != nil {
		return false
	}
	return abs == tw.path
}

func (tw *TuningWatcher) reload() {
	cfg, err := LoadTuning(tw.path)
	if err != nil {
		log.Printf("[TuningWatcher] Warning: ignoring %s: %v", tw.path, err)
		return
	}

	// 只保留最新的一份配置
	select {
	case <-tw.Configs:
	default:
	}
	select {
	case tw.Configs <- cfg:
	case <-tw.closeCh:
	}
	log.Printf("[TuningWatcher] Reloaded %s", tw.path)
}
