package store

import "fmt"

// CreateRun 创建一次提取运行的记录，返回 run_id
func (s *Store) CreateRun(runSalt, sourceDir string) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO runs (run_salt, source_dir, status)
		VALUES (?, ?, 'processing')
	`, runSalt, sourceDir)
	if err != nil {
		return 0, fmt.Errorf("failed to create run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}
	return id, nil
}

// CompleteRun 完成运行记录更新
func (s *Store) CompleteRun(id int64, totalFiles, cooperatives, categories int, status string) error {
	_, err := s.db.Exec(`
		UPDATE runs SET
			total_files = ?,
			cooperatives = ?,
			categories = ?,
			status = ?,
			completed_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, totalFiles, cooperatives, categories, status, id)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	return nil
}

// RecordFile 记录单个工作簿的处理结果
func (s *Store) RecordFile(runID int64, filename, status string, cooperatives, categories int, errorMessage string) error {
	_, err := s.db.Exec(`
		INSERT INTO run_files (run_id, filename, status, cooperatives, categories, error_message)
		VALUES (?, ?, ?, ?, ?, ?)
	`, runID, filename, status, cooperatives, categories, errorMessage)
	if err != nil {
		return fmt.Errorf("failed to record file: %w", err)
	}
	return nil
}
