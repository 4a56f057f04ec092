package game

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/decker502/lanedrive/pkg/components"
	"github.com/decker502/lanedrive/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ResourceManager is responsible for centralized management of game resources.
// It provides loading and caching mechanisms for images and audio assets,
// ensuring that resources are loaded only once and reused throughout the game.
//
// Images and sounds are read from disk below the asset root. The resource
// configuration itself is embedded in the binary (data/resources.yaml).
//
// Thread Safety Note:
// This implementation is NOT thread-safe. All loading happens on the game loop
// goroutine before the first frame.
//
// Usage:
//
//	audioContext := audio.NewContext(48000)
//	rm := NewResourceManager(audioContext, utils.FindAssetRoot("."))
//	if err := rm.LoadResourceConfig(config.ResourceConfigPath); err != nil {
//	    return err
//	}
//	if err := rm.LoadResourceGroup(config.ResourceGroupGame); err != nil {
//	    return err
//	}
type ResourceManager struct {
	imageCache   map[string]*ebiten.Image // Cache for loaded images: path -> Image
	audioCache   map[string]*audio.Player // Cache for loaded audio players: path -> Player
	audioContext *audio.Context           // Global audio context, nil when audio is unavailable
	root         string                   // Asset root directory (parent of base_path)

	// YAML resource configuration
	config      *ResourceConfig   // Parsed YAML configuration
	resourceMap map[string]string // Resource ID -> file path mapping for quick lookup
	columns     map[string]int    // Image resource ID -> sprite sheet columns
	loops       map[string]bool   // Sound resource ID -> loops forever
}

// NewResourceManager creates and initializes a new ResourceManager instance.
//
// Parameters:
//   - audioContext: The global audio context used for decoding and playing audio files.
//     May be nil, in which case every audio load fails with an error.
//   - root: The asset root directory; resource paths are resolved relative to it.
func NewResourceManager(audioContext *audio.Context, root string) *ResourceManager {
	return &ResourceManager{
		imageCache:   make(map[string]*ebiten.Image),
		audioCache:   make(map[string]*audio.Player),
		audioContext: audioContext,
		root:         root,
		resourceMap:  make(map[string]string),
		columns:      make(map[string]int),
		loops:        make(map[string]bool),
	}
}

// LoadImage loads an image file from the specified path and caches it for future use.
// If the image has already been loaded, it returns the cached version.
// Supported formats: PNG, JPEG.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg

	return ebitenImg, nil
}

// audioStream is what every Ebitengine decoder returns.
type audioStream interface {
	io.ReadSeeker
	Length() int64
}

// decodeAudio reads the whole file into memory and decodes it by extension.
// Streams are resampled to the audio context's sample rate, since the
// sound effects are 44.1 kHz wav files while the context runs at 48 kHz.
func (rm *ResourceManager) decodeAudio(path string) (audioStream, error) {
	if rm.audioContext == nil {
		return nil, fmt.Errorf("audio context not available for %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".mp3", ".ogg", ".wav":
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .mp3, .ogg, .wav)", ext)
	}

	audioData, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	reader := bytes.NewReader(audioData)
	sampleRate := rm.audioContext.SampleRate()

	switch ext {
	case ".mp3":
		stream, err := mp3.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode MP3 audio %s: %w", path, err)
		}
		return stream, nil
	case ".ogg":
		stream, err := vorbis.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode OGG audio %s: %w", path, err)
		}
		return stream, nil
	default:
		stream, err := wav.DecodeWithSampleRate(sampleRate, reader)
		if err != nil {
			return nil, fmt.Errorf("failed to decode WAV audio %s: %w", path, err)
		}
		return stream, nil
	}
}

// LoadAudio loads an audio file and wraps it in an infinite loop, making it
// suitable for background music. The player is cached by path.
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	stream, err := rm.decodeAudio(path)
	if err != nil {
		return nil, err
	}

	loopStream := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := rm.audioContext.NewPlayer(loopStream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadSoundEffect loads a one-shot sound effect. Unlike LoadAudio, the stream
// is not looped. The player is cached by path.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	stream, err := rm.decodeAudio(path)
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// GetAudioPlayer retrieves a previously loaded audio player by path.
// Returns nil if the audio has not been loaded yet.
func (rm *ResourceManager) GetAudioPlayer(path string) *audio.Player {
	return rm.audioCache[path]
}

// LoadResourceConfig loads the resource configuration.
// Paths under data/ are read from the embedded filesystem when it has been
// initialized; any other path is read from disk.
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	var (
		data []byte
		err  error
	)
	if embedded.IsInitialized() && embedded.Exists(configPath) {
		data, err = embedded.ReadFile(configPath)
	} else {
		data, err = os.ReadFile(configPath)
	}
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	cfg, err := ParseResourceConfig(data)
	if err != nil {
		return fmt.Errorf("failed to load resource config %s: %w", configPath, err)
	}

	rm.config = cfg
	rm.buildResourceMap()

	log.Printf("[ResourceManager] Loaded resource config %s (%d resources, root %s)", configPath, len(rm.resourceMap), rm.root)
	return nil
}

// buildResourceMap constructs the ID -> full path mapping, plus the sprite
// sheet column and loop tables.
//
//	IMAGE_CAR_LEFT -> <root>/resources/images/carLeft.png
//	SOUND_PICKUP   -> <root>/resources/sounds/pickupCoin.wav
func (rm *ResourceManager) buildResourceMap() {
	if rm.config == nil {
		return
	}

	rm.resourceMap = make(map[string]string)
	rm.columns = make(map[string]int)
	rm.loops = make(map[string]bool)

	for _, group := range rm.config.Groups {
		for _, img := range group.Images {
			fullPath := buildFullPath(rm.config.BasePath, img.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".png"
			}
			rm.resourceMap[img.ID] = rm.resolve(fullPath)
			rm.columns[img.ID] = img.Cols
		}

		for _, sound := range group.Sounds {
			fullPath := buildFullPath(rm.config.BasePath, sound.Path)
			if filepath.Ext(fullPath) == "" {
				fullPath += ".wav"
			}
			rm.resourceMap[sound.ID] = rm.resolve(fullPath)
			rm.loops[sound.ID] = sound.Loop
		}
	}
}

func (rm *ResourceManager) resolve(path string) string {
	if rm.root == "" || filepath.IsAbs(path) {
		return filepath.FromSlash(path)
	}
	return filepath.Join(rm.root, filepath.FromSlash(path))
}

// ResolvePath returns the file path for a resource ID.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, bool) {
	path, ok := rm.resourceMap[resourceID]
	return path, ok
}

// LoadImageByID loads an image resource using its resource ID.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("resource ID not found: %s", resourceID)
	}

	return rm.LoadImage(filePath)
}

// LoadSpriteSheet loads an image by ID together with its column count.
func (rm *ResourceManager) LoadSpriteSheet(resourceID string) (components.SpriteSheet, error) {
	img, err := rm.LoadImageByID(resourceID)
	if err != nil {
		return components.SpriteSheet{}, err
	}
	return components.SpriteSheet{Image: img, Columns: rm.columns[resourceID]}, nil
}

// LoadSoundByID loads a sound by ID; looping sounds go through LoadAudio.
func (rm *ResourceManager) LoadSoundByID(resourceID string) (*audio.Player, error) {
	if rm.config == nil {
		return nil, fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}
	filePath, exists := rm.resourceMap[resourceID]
	if !exists {
		return nil, fmt.Errorf("sound resource ID not found: %s", resourceID)
	}
	if rm.loops[resourceID] {
		return rm.LoadAudio(filePath)
	}
	return rm.LoadSoundEffect(filePath)
}

// LoadResourceGroup loads all images in a group, then all sounds.
// Images are required. Sounds are loaded only when an audio context exists.
func (rm *ResourceManager) LoadResourceGroup(groupName string) error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded - call LoadResourceConfig first")
	}

	group, exists := rm.config.Groups[groupName]
	if !exists {
		return fmt.Errorf("resource group not found: %s", groupName)
	}

	for _, img := range group.Images {
		if _, err := rm.LoadImageByID(img.ID); err != nil {
			return fmt.Errorf("failed to load image %s in group %s: %w", img.ID, groupName, err)
		}
	}

	if rm.audioContext == nil {
		log.Printf("[ResourceManager] Warning: no audio context, skipping %d sounds in group %s", len(group.Sounds), groupName)
		return nil
	}
	for _, sound := range group.Sounds {
		if _, err := rm.LoadSoundByID(sound.ID); err != nil {
			return fmt.Errorf("failed to load sound %s in group %s: %w", sound.ID, groupName, err)
		}
	}

	log.Printf("[ResourceManager] Loaded group %s: %d images, %d sounds", groupName, len(group.Images), len(group.Sounds))
	return nil
}
