package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

var baseURL = "http://localhost:8080"

func main() {
	if v := os.Getenv("SMOKE_BASE_URL"); v != "" {
		baseURL = v
	}
	client := &http.Client{Timeout: 10 * time.Second}

	fmt.Println("Starting smoke test against", baseURL)

	studentID := fmt.Sprintf("smoke-%d", time.Now().Unix())
	password := "smoke-password"

	// 1. Register
	fmt.Println("1. Registering student...")
	var reg struct {
		AccessToken string `json:"access_token"`
	}
	body, _ := json.Marshal(map[string]string{
		"student_id": studentID,
		"password":   password,
		"email":      studentID + "@example.com",
	})
	if !send(client, http.MethodPost, "/auth/register", "application/json", bytes.NewReader(body), "", &reg) {
		fail("Register")
	}
	fmt.Println("PASSED: Register")

	// 2. Login
	fmt.Println("2. Logging in...")
	var login struct {
		AccessToken string `json:"access_token"`
	}
	form := url.Values{"username": {studentID}, "password": {password}}
	if !send(client, http.MethodPost, "/auth/login", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()), "", &login) {
		fail("Login")
	}
	fmt.Println("PASSED: Login")

	// 3. Read student
	fmt.Println("3. Reading student...")
	var student map[string]any
	if !send(client, http.MethodGet, "/students/"+studentID, "", nil, "", &student) {
		fail("Get student")
	}
	fmt.Println("PASSED: Get student")

	// 4. Enroll in the first module that has no prerequisites
	fmt.Println("4. Updating enrollment...")
	var modules []struct {
		CourseCode    string     `json:"course_code"`
		Prerequisites [][]string `json:"prerequisites"`
	}
	if !send(client, http.MethodGet, "/modules?limit=50", "", nil, "", &modules) {
		fail("List modules")
	}
	codes := []string{}
	for _, m := range modules {
		if len(m.Prerequisites) == 0 {
			codes = append(codes, m.CourseCode)
			break
		}
	}
	student["course_codes"] = codes
	body, _ = json.Marshal(student)
	if !send(client, http.MethodPut, "/students", "application/json", bytes.NewReader(body), login.AccessToken, nil) {
		fail("Update student")
	}
	fmt.Println("PASSED: Update student", codes)

	// 5. Recommendations
	fmt.Println("5. Fetching recommendations...")
	if !send(client, http.MethodGet, "/recommendations/"+studentID, "", nil, login.AccessToken, nil) {
		fail("Recommendations")
	}
	fmt.Println("PASSED: Recommendations")

	fmt.Println("Smoke test completed successfully")
}

func fail(step string) {
	fmt.Println("FAILED:", step)
	os.Exit(1)
}

func send(client *http.Client, method, path, contentType string, body io.Reader, token string, out any) bool {
	req, err := http.NewRequest(method, baseURL+path, body)
	if err != nil {
		fmt.Printf("Error creating request: %v\n", err)
		return false
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error sending request: %v\n", err)
		return false
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	fmt.Printf("%s %s -> %d %s\n", method, path, resp.StatusCode, data)
	if resp.StatusCode != http.StatusOK {
		return false
	}
	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			fmt.Printf("Error decoding response: %v\n", err)
			return false
		}
	}
	return true
}
