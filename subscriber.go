package mylog

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileSubscriber watches one log file and delivers freshly parsed
// records to its receiver on every write.
type FileSubscriber struct {
	filePath string
	parser   *Parser
	lastRead time.Time
	mu       sync.Mutex
	receiver Receiver
}

func NewFileSubscriber(filePath string, parser *Parser) (*FileSubscriber, error) {
	if _, err := os.Stat(filePath); err != nil {
		return nil, fmt.Errorf("os.Stat: %w", err)
	}

	return &FileSubscriber{filePath: filePath, parser: parser}, nil
}

func (s *FileSubscriber) Subscribe(receiver Receiver) error {
	s.receiver = receiver
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify.NewWatcher: %w", err)
	}
	defer watcher.Close()

	go s.watchResponder(watcher)

	err = watcher.Add(s.filePath)
	if err != nil {
		return fmt.Errorf("watcher.Add: %w", err)
	}

	// Block main goroutine forever.
	// TODO: implement proper shutdown handling
	<-make(chan struct{})
	return nil
}

func (s *FileSubscriber) watchResponder(watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				log.Println("watcher.Events is not okay.")
				return
			}
			if event.Has(fsnotify.Write) {
				err := s.reactToFileWrite(event.Name)
				if err != nil {
					log.Printf("reactToFileWrite: %s", err.Error())
					return
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				log.Println("watcher.Errors is not okay.")
				return
			}
			log.Println("watcher.Errors: ", err)
		}
	}
}

func (s *FileSubscriber) reactToFileWrite(filepath string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	timeElapsed := time.Since(s.lastRead)
	if timeElapsed < time.Second { // react at most once per second
		return nil
	}
	s.lastRead = time.Now()

	b, err := readLoop(filepath)
	if err != nil {
		return fmt.Errorf("readLoop: %w", err)
	}

	records, err := s.parser.ParseFile(string(b))
	if err != nil {
		// A half-saved edit should not kill the watcher. Report it and
		// wait for the next write.
		log.Printf("parse error in %s: %s", filepath, err.Error())
		return nil
	}

	err = s.receiver.Receive(filepath, records)
	if err != nil {
		return fmt.Errorf("error from record receiver: %w", err)
	}

	return nil
}

// readLoop tries to read the file a lot
func readLoop(filepath string) ([]byte, error) {
	for i := 0; i < 100; i++ {
		f, err := os.Open(filepath)
		if err != nil {
			return nil, fmt.Errorf("os.Open: %w", err)
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, fmt.Errorf("io.ReadAll: %w", err)
		}

		if len(b) == 0 {
			// sometimes we get an empty file, probably because the
			// editor has not finished writing it out yet
			time.Sleep(time.Millisecond * 100)
			continue
		}

		return b, nil
	}

	return nil, fmt.Errorf("readLoop: too many retries")
}
