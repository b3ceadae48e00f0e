package tracing

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	// Need to use MySQL connections.
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// MySQLTraceWriter is a tracer that stores completed dispatches in a MySQL
// database created for the run.
type MySQLTraceWriter struct {
	dbConnection

	lock      sync.Mutex
	records   []DispatchRecord
	batchSize int
}

// NewMySQLTraceWriter returns a new MySQLTraceWriter. Init must be called
// before the writer receives dispatches.
func NewMySQLTraceWriter() *MySQLTraceWriter {
	t := &MySQLTraceWriter{
		batchSize: 100000,
	}

	atexit.Register(func() { t.Flush() })

	return t
}

// Init establishes a connection to MySQL and creates the trace database.
func (t *MySQLTraceWriter) Init() {
	t.dbConnection.init("")
	t.createDatabase()
}

func (t *MySQLTraceWriter) createDatabase() {
	dbName := "safehook_trace_" + xid.New().String()
	t.dbName = dbName
	log.Printf("Trace is collected in database: %s\n", dbName)

	t.mustExecute("CREATE DATABASE " + dbName)
	t.mustExecute("USE " + dbName)

	t.createTable()
}

func (t *MySQLTraceWriter) createTable() {
	t.mustExecute(`
		create table trace
		(
			dispatch_id varchar(200) not null unique primary key,
			slot        varchar(200) null,
			detail      varchar(200) null,
			start_time  float       null,
			end_time    float       null
		);
	`)

	t.mustExecute(`
		create index trace_slot_index
			on trace (slot);
	`)

	t.mustExecute(`
		create index trace_start_time_index
			on trace (start_time) USING BTREE;
	`)

	t.mustExecute(`
		create index trace_end_time_index
			on trace (end_time) USING BTREE;
	`)
}

// StartDispatch does nothing; only completed dispatches are stored.
func (t *MySQLTraceWriter) StartDispatch(_ DispatchRecord) {
	// Do nothing
}

// EndDispatch buffers the completed dispatch.
func (t *MySQLTraceWriter) EndDispatch(r DispatchRecord) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.records = append(t.records, r)
	if len(t.records) > t.batchSize {
		t.flushLocked()
	}
}

// Flush writes all buffered dispatches into the database.
func (t *MySQLTraceWriter) Flush() {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.flushLocked()
}

func (t *MySQLTraceWriter) flushLocked() {
	if len(t.records) == 0 {
		return
	}

	sqlStr := `INSERT INTO trace VALUES`
	vals := []interface{}{}

	for i := range t.records {
		sqlStr += "(?, ?, ?, ?, ?),"
		vals = append(vals,
			t.records[i].ID,
			t.records[i].Slot,
			t.records[i].Detail,
			t.records[i].StartTime,
			t.records[i].EndTime,
		)
	}

	sqlStr = strings.TrimSuffix(sqlStr, ",")

	stmt, err := t.Prepare(sqlStr)
	if err != nil {
		panic(err)
	}

	_, err = stmt.Exec(vals...)
	if err != nil {
		panic(err)
	}

	err = stmt.Close()
	if err != nil {
		panic(err)
	}

	t.records = nil
}

type dbConnection struct {
	*sql.DB

	username  string
	password  string
	ipAddress string
	port      int
	dbName    string
}

func (c *dbConnection) init(dbName string) {
	c.dbName = dbName

	c.getCredentials()
	c.connect()
}

func (c *dbConnection) getCredentials() {
	// A .env file can carry the credentials; the environment wins over it.
	_ = godotenv.Load()

	c.username = os.Getenv("SAFEHOOK_TRACE_USERNAME")
	if c.username == "" {
		panic(`trace username is not set, use environment variable SAFEHOOK_TRACE_USERNAME to set it.`)
	}

	c.password = os.Getenv("SAFEHOOK_TRACE_PASSWORD")
	c.ipAddress = os.Getenv("SAFEHOOK_TRACE_IP")
	if c.ipAddress == "" {
		c.ipAddress = "127.0.0.1"
	}

	portString := os.Getenv("SAFEHOOK_TRACE_PORT")
	if portString == "" {
		portString = "3306"
	}
	port, err := strconv.Atoi(portString)
	if err != nil {
		panic(err)
	}
	c.port = port
}

func (c *dbConnection) connect() {
	connectStr := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s",
		c.username, c.password, c.ipAddress, c.port, c.dbName)
	db, err := sql.Open("mysql", connectStr)
	if err != nil {
		panic(err)
	}

	c.DB = db
}

func (c *dbConnection) mustExecute(query string) sql.Result {
	res, err := c.Exec(query)
	if err != nil {
		panic(err)
	}

	return res
}
